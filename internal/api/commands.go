package api

import (
	"encoding/json"
	"fmt"

	"github.com/nerrad567/lightsim/internal/infrastructure/mqtt"
	"github.com/nerrad567/lightsim/internal/light"
)

// Command is the envelope accepted on the MQTT command topic.
//
// Example payloads:
//
//	{"command": "on"}
//	{"command": "set_brightness", "parameters": {"brightness": 50}}
//	{"command": "set_settings", "parameters": {"is_on": true, "brightness": 30, "color_temperature": 3000, "mode": "night"}}
type Command struct {
	Command    string         `json:"command"`
	Parameters map[string]any `json:"parameters"`
}

// subscribeCommands subscribes to the light's command topic on the broker.
// Returns nil when no broker is configured.
func (s *Server) subscribeCommands() error {
	if s.mqtt == nil {
		return nil
	}

	topic := mqtt.Topics{}.LightCommand(s.light.Descriptor().DeviceID)
	return s.mqtt.Subscribe(topic, 1, func(topic string, payload []byte) error {
		var cmd Command
		if err := json.Unmarshal(payload, &cmd); err != nil {
			return fmt.Errorf("decoding command payload: %w", err)
		}
		return s.applyCommand(cmd)
	})
}

// applyCommand executes a broker command against the light.
//
// Commands go through the same validated mutation path as HTTP requests;
// a rejected value is logged and the state is left untouched. Successful
// mutations fan out to WebSocket clients, the retained state topic, and
// the audit trail with source "mqtt".
func (s *Server) applyCommand(cmd Command) error {
	var (
		state light.State
		err   error
	)

	switch cmd.Command {
	case "on":
		state = s.light.SetPower(true)
	case "off":
		state = s.light.SetPower(false)
	case "toggle":
		state = s.light.SetPower(!s.light.State().IsOn)
	case "set_brightness":
		value, ok := intParam(cmd.Parameters, "brightness")
		if !ok {
			return fmt.Errorf("command %q requires integer parameter %q", cmd.Command, "brightness")
		}
		state, err = s.light.SetBrightness(value)
	case "set_temperature":
		value, ok := intParam(cmd.Parameters, "color_temperature")
		if !ok {
			return fmt.Errorf("command %q requires integer parameter %q", cmd.Command, "color_temperature")
		}
		state, err = s.light.SetTemperature(value)
	case "set_mode":
		value, ok := cmd.Parameters["mode"].(string)
		if !ok {
			return fmt.Errorf("command %q requires string parameter %q", cmd.Command, "mode")
		}
		state, err = s.light.SetMode(light.Mode(value))
	case "set_settings":
		candidate, buildErr := buildSettings(cmd.Parameters)
		if buildErr != nil {
			return buildErr
		}
		state, err = s.light.ApplySettings(candidate)
	default:
		return fmt.Errorf("unknown command %q", cmd.Command)
	}

	if err != nil {
		s.logger.Warn("broker command rejected", "command", cmd.Command, "error", err)
		return nil // validation rejection is not a handler failure
	}

	s.logger.Info("broker command applied", "command", cmd.Command)
	s.fanoutStateChange(state, light.StateHistorySourceMQTT)
	return nil
}

// buildSettings assembles a full state document from command parameters.
// All four fields are required, matching the bulk HTTP endpoint.
func buildSettings(params map[string]any) (light.State, error) {
	isOn, ok := params["is_on"].(bool)
	if !ok {
		return light.State{}, fmt.Errorf("command %q requires boolean parameter %q", "set_settings", "is_on")
	}
	brightness, ok := intParam(params, "brightness")
	if !ok {
		return light.State{}, fmt.Errorf("command %q requires integer parameter %q", "set_settings", "brightness")
	}
	temperature, ok := intParam(params, "color_temperature")
	if !ok {
		return light.State{}, fmt.Errorf("command %q requires integer parameter %q", "set_settings", "color_temperature")
	}
	mode, ok := params["mode"].(string)
	if !ok {
		return light.State{}, fmt.Errorf("command %q requires string parameter %q", "set_settings", "mode")
	}

	return light.State{
		IsOn:             isOn,
		Brightness:       brightness,
		ColorTemperature: temperature,
		Mode:             light.Mode(mode),
	}, nil
}

// intParam extracts an integer parameter from a decoded JSON object.
// JSON numbers decode as float64; fractional values are rejected.
func intParam(params map[string]any, key string) (int, bool) {
	raw, ok := params[key]
	if !ok {
		return 0, false
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}
