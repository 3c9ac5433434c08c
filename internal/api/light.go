package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nerrad567/lightsim/internal/infrastructure/mqtt"
	"github.com/nerrad567/lightsim/internal/light"
)

// Request bodies use pointer fields so a missing field can be told apart
// from a zero value.

type powerRequest struct {
	IsOn *bool `json:"is_on"`
}

type brightnessRequest struct {
	Brightness *int `json:"brightness"`
}

type temperatureRequest struct {
	ColorTemperature *int `json:"color_temperature"`
}

type modeRequest struct {
	Mode *light.Mode `json:"mode"`
}

type settingsRequest struct {
	IsOn             *bool       `json:"is_on"`
	Brightness       *int        `json:"brightness"`
	ColorTemperature *int        `json:"color_temperature"`
	Mode             *light.Mode `json:"mode"`
}

// stateEvent is the payload broadcast over WebSocket and published to MQTT
// after a successful mutation.
type stateEvent struct {
	EventID  string      `json:"event_id"`
	DeviceID string      `json:"device_id"`
	State    light.State `json:"state"`
	Source   string      `json:"source"`
}

// handleStatus returns the full status document: current state plus
// descriptor metadata.
//
// GET /api/light/status
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.light.Status())
}

// handleCapabilities returns the immutable device descriptor.
//
// GET /api/light/capabilities
func (s *Server) handleCapabilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.light.Descriptor())
}

// handleSetPower turns the light on or off.
//
// POST /api/light/power {"is_on": true}
func (s *Server) handleSetPower(w http.ResponseWriter, r *http.Request) {
	var req powerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.IsOn == nil {
		writeBadRequest(w, "is_on is required")
		return
	}

	state := s.light.SetPower(*req.IsOn)
	s.fanoutStateChange(state, light.StateHistorySourceCommand)
	writeJSON(w, http.StatusOK, state)
}

// handleSetBrightness sets the brightness percentage.
//
// POST /api/light/brightness {"brightness": 50}
func (s *Server) handleSetBrightness(w http.ResponseWriter, r *http.Request) {
	var req brightnessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Brightness == nil {
		writeBadRequest(w, "brightness is required")
		return
	}

	state, err := s.light.SetBrightness(*req.Brightness)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	s.fanoutStateChange(state, light.StateHistorySourceCommand)
	writeJSON(w, http.StatusOK, state)
}

// handleSetTemperature sets the colour temperature in Kelvin.
//
// POST /api/light/temperature {"color_temperature": 3000}
func (s *Server) handleSetTemperature(w http.ResponseWriter, r *http.Request) {
	var req temperatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.ColorTemperature == nil {
		writeBadRequest(w, "color_temperature is required")
		return
	}

	state, err := s.light.SetTemperature(*req.ColorTemperature)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	s.fanoutStateChange(state, light.StateHistorySourceCommand)
	writeJSON(w, http.StatusOK, state)
}

// handleSetMode sets the preset mode.
//
// POST /api/light/mode {"mode": "party"}
func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Mode == nil {
		writeBadRequest(w, "mode is required")
		return
	}

	state, err := s.light.SetMode(*req.Mode)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	s.fanoutStateChange(state, light.StateHistorySourceCommand)
	writeJSON(w, http.StatusOK, state)
}

// handleUpdateSettings atomically replaces the whole state.
//
// All four fields are required; validation covers every field before any
// commits, so a single invalid value rejects the entire document.
//
// PUT /api/light/settings {"is_on":true,"brightness":30,"color_temperature":3000,"mode":"night"}
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.IsOn == nil || req.Brightness == nil || req.ColorTemperature == nil || req.Mode == nil {
		writeBadRequest(w, "is_on, brightness, color_temperature, and mode are all required")
		return
	}

	candidate := light.State{
		IsOn:             *req.IsOn,
		Brightness:       *req.Brightness,
		ColorTemperature: *req.ColorTemperature,
		Mode:             *req.Mode,
	}

	state, err := s.light.ApplySettings(candidate)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	s.fanoutStateChange(state, light.StateHistorySourceBulk)
	writeJSON(w, http.StatusOK, state)
}

// handleHistory returns the most recent recorded state changes, newest first.
//
// GET /api/light/history?limit=20
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeNotFound(w, "state history is not enabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeBadRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	deviceID := s.light.Descriptor().DeviceID
	entries, err := s.history.GetHistory(r.Context(), deviceID, limit)
	if err != nil {
		s.logger.Error("state history query failed", "error", err)
		writeInternalError(w, "failed to query state history")
		return
	}
	if entries == nil {
		entries = []light.StateHistoryEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"device_id": deviceID,
		"entries":   entries,
	})
}

// fanoutStateChange distributes a committed state to every observer:
// WebSocket clients, the retained MQTT state topic, the metrics store,
// and the audit trail. All deliveries are best-effort; a failure in one
// never rolls back the mutation or blocks the HTTP response.
func (s *Server) fanoutStateChange(state light.State, source string) {
	deviceID := s.light.Descriptor().DeviceID

	event := stateEvent{
		EventID:  light.NewEventID(),
		DeviceID: deviceID,
		State:    state,
		Source:   source,
	}

	// WebSocket broadcast
	if s.hub != nil {
		s.hub.Broadcast("light.state_changed", event)
	}

	// Retained MQTT state publication
	s.publishEvent(event)

	// Metrics
	if s.influx != nil {
		s.influx.WriteLightMetric(deviceID, "brightness", float64(state.Brightness))
		s.influx.WriteLightMetric(deviceID, "color_temperature", float64(state.ColorTemperature))
		power := 0.0
		if state.IsOn {
			power = 1.0
		}
		s.influx.WriteLightMetric(deviceID, "power", power)
	}

	// Audit trail
	if s.history != nil {
		if err := s.history.RecordStateChange(context.Background(), deviceID, state, source); err != nil {
			s.logger.Warn("state history write failed", "device_id", deviceID, "error", err)
		}
	}
}

// publishState publishes the current state as a retained MQTT message so new
// subscribers immediately see the light's last committed state.
func (s *Server) publishState(state light.State) {
	s.publishEvent(stateEvent{
		EventID:  light.NewEventID(),
		DeviceID: s.light.Descriptor().DeviceID,
		State:    state,
		Source:   light.StateHistorySourceCommand,
	})
}

// publishEvent publishes a state event to the retained MQTT state topic.
func (s *Server) publishEvent(event stateEvent) {
	if s.mqtt == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal state for MQTT", "error", err)
		return
	}

	topic := mqtt.Topics{}.LightState(event.DeviceID)
	if err := s.mqtt.PublishRetained(topic, payload); err != nil {
		s.logger.Warn("state publish failed", "topic", topic, "error", err)
	}
}
