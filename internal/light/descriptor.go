package light

// Descriptor holds the immutable identity and capability metadata of a light.
//
// All fields are fixed at construction; status queries return them verbatim.
type Descriptor struct {
	DeviceID       string       `json:"device_id"`
	DeviceType     string       `json:"device_type"`
	AvailableModes []Mode       `json:"available_modes"`
	MinTemperature int          `json:"min_temperature"`
	MaxTemperature int          `json:"max_temperature"`
	Capabilities   []Capability `json:"capabilities"`
	Endpoint       string       `json:"endpoint"`
}

// NewDescriptor creates a Descriptor for a light with the fixed mode set,
// temperature bounds, and capability list.
//
// Parameters:
//   - deviceID: Unique device identifier (e.g., "light-kitchen")
//   - endpoint: Addressable base URL of the device's HTTP API
func NewDescriptor(deviceID, endpoint string) Descriptor {
	return Descriptor{
		DeviceID:       deviceID,
		DeviceType:     DeviceType,
		AvailableModes: AllModes(),
		MinTemperature: MinColorTemperature,
		MaxTemperature: MaxColorTemperature,
		Capabilities:   AllCapabilities(),
		Endpoint:       endpoint,
	}
}

// Info returns a copy of the descriptor with cloned slice fields, so callers
// cannot mutate the shared mode or capability lists.
func (d Descriptor) Info() Descriptor {
	cpy := d
	cpy.AvailableModes = append([]Mode(nil), d.AvailableModes...)
	cpy.Capabilities = append([]Capability(nil), d.Capabilities...)
	return cpy
}

// CapabilityList returns a copy of the capability labels.
func (d Descriptor) CapabilityList() []Capability {
	return append([]Capability(nil), d.Capabilities...)
}
