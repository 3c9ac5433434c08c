package light

// DeviceType is the fixed device type for this simulator.
const DeviceType = "light"

// Brightness bounds (percent).
const (
	MinBrightness = 0
	MaxBrightness = 100
)

// Colour temperature bounds (Kelvin).
const (
	MinColorTemperature = 2000
	MaxColorTemperature = 8000
)

// Mode represents a light preset mode.
type Mode string

// Mode constants.
const (
	ModeEco    Mode = "eco"
	ModeNight  Mode = "night"
	ModeNormal Mode = "normal"
	ModeParty  Mode = "party"
)

// AllModes returns all valid mode values in their declared order.
func AllModes() []Mode {
	return []Mode{ModeEco, ModeNight, ModeNormal, ModeParty}
}

// Capability represents what the light can do.
type Capability string

// Capability constants.
const (
	CapPowerControl       Capability = "power_control"
	CapBrightnessControl  Capability = "brightness_control"
	CapTemperatureControl Capability = "temperature_control"
	CapModePresets        Capability = "mode_presets"
	CapBulkSettingsUpdate Capability = "bulk_settings_update"
)

// AllCapabilities returns all capability values the simulator exposes.
func AllCapabilities() []Capability {
	return []Capability{
		CapPowerControl, CapBrightnessControl,
		CapTemperatureControl, CapModePresets,
		CapBulkSettingsUpdate,
	}
}

// State holds the four operational fields of the light.
//
// A State value is also the candidate document for bulk updates: every field
// is validated before any field is committed.
type State struct {
	IsOn             bool `json:"is_on"`
	Brightness       int  `json:"brightness"`
	ColorTemperature int  `json:"color_temperature"`
	Mode             Mode `json:"mode"`
}

// DefaultState returns the state a light starts in when instantiated.
func DefaultState() State {
	return State{
		IsOn:             false,
		Brightness:       100,
		ColorTemperature: 4000,
		Mode:             ModeEco,
	}
}

// Status is the read-only composite of State and Descriptor fields returned
// by status queries. Field layout matches the wire format of the HTTP API.
type Status struct {
	DeviceID         string       `json:"device_id"`
	DeviceType       string       `json:"device_type"`
	IsOn             bool         `json:"is_on"`
	Brightness       int          `json:"brightness"`
	ColorTemperature int          `json:"color_temperature"`
	Mode             Mode         `json:"mode"`
	AvailableModes   []Mode       `json:"available_modes"`
	MinTemperature   int          `json:"min_temperature"`
	MaxTemperature   int          `json:"max_temperature"`
	Capabilities     []Capability `json:"capabilities"`
	Endpoint         string       `json:"endpoint"`
}
