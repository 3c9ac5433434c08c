// Package light provides the device core for the smart-light simulator.
//
// The package is split between immutable identity and mutable state:
//
//   - Descriptor: identity and capability metadata fixed at construction
//     (device ID, type, available modes, temperature bounds, capabilities).
//   - Light: the single mutable state record (power, brightness, colour
//     temperature, mode) plus the validation rules governing each mutation.
//
// # Key Types
//
//   - Light: mutex-guarded state holder with one method per mutation
//   - Descriptor: construction-time constants and validation helpers
//   - State: the four operational fields, JSON-tagged for the API
//   - Status: read-only composite of State and Descriptor
//
// # Usage
//
//	desc := light.NewDescriptor("light-kitchen", "http://127.0.0.1:8001/api/light")
//	l := light.New(desc)
//
//	state, err := l.SetBrightness(50)
//	if errors.Is(err, light.ErrOutOfRange) {
//	    // reject with client error
//	}
//
//	// Atomic bulk replace; no field commits if any field is invalid
//	state, err = l.ApplySettings(light.State{
//	    IsOn: true, Brightness: 30, ColorTemperature: 3000, Mode: light.ModeParty,
//	})
//
// # Thread Safety
//
// All Light methods are safe for concurrent use. Each mutation validates and
// commits under a single critical section, so concurrent writers cannot
// interleave and produce a state violating the range/membership invariants.
// Status() returns a consistent snapshot.
package light
