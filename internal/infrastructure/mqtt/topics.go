package mqtt

import "fmt"

// Topic prefixes for the simulator's MQTT namespace.
//
// Device topics use the flat scheme: lightsim/{category}/light/{device_id}
const (
	// TopicPrefix is the base for all simulator topics.
	TopicPrefix = "lightsim"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "lightsim/system"
)

// Topics provides builders for the simulator's MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	stateTopic := topics.LightState("light-kitchen")
//	// Returns: "lightsim/state/light/light-kitchen"
type Topics struct{}

// LightState returns the retained state topic for a light.
//
// Example: lightsim/state/light/light-kitchen
func (Topics) LightState(deviceID string) string {
	return fmt.Sprintf("%s/state/light/%s", TopicPrefix, deviceID)
}

// LightCommand returns the command intake topic for a light.
//
// Example: lightsim/command/light/light-kitchen
func (Topics) LightCommand(deviceID string) string {
	return fmt.Sprintf("%s/command/light/%s", TopicPrefix, deviceID)
}

// SystemStatus returns the system status topic used for LWT and
// online/offline announcements.
//
// Example: lightsim/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllLightStates returns a pattern matching state topics for all lights.
//
// Pattern: lightsim/state/light/+
func (Topics) AllLightStates() string {
	return fmt.Sprintf("%s/state/light/+", TopicPrefix)
}

// AllLightCommands returns a pattern matching command topics for all lights.
//
// Pattern: lightsim/command/light/+
func (Topics) AllLightCommands() string {
	return fmt.Sprintf("%s/command/light/+", TopicPrefix)
}

// AllTopics returns a pattern matching all simulator topics.
// Use with caution - this receives ALL traffic.
//
// Pattern: lightsim/#
func (Topics) AllTopics() string {
	return "lightsim/#"
}
