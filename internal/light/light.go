package light

import "sync"

// Light is a single simulated smart light: one descriptor, one mutable state.
//
// All mutations are serialized through an internal mutex. Each setter
// validates and commits inside the same critical section; on a validation
// failure the current state is returned alongside the error and nothing is
// committed.
type Light struct {
	desc Descriptor

	mu    sync.Mutex
	state State
}

// New creates a Light with the given descriptor, starting in the default
// state (off, full brightness, 4000K, eco).
func New(desc Descriptor) *Light {
	return &Light{
		desc:  desc,
		state: DefaultState(),
	}
}

// Descriptor returns a copy of the light's immutable metadata.
func (l *Light) Descriptor() Descriptor {
	return l.desc.Info()
}

// State returns a snapshot of the current operational state.
func (l *Light) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Status returns the composite status document: current state fields plus
// descriptor metadata, taken as one consistent snapshot.
func (l *Light) Status() Status {
	l.mu.Lock()
	state := l.state
	l.mu.Unlock()

	info := l.desc.Info()
	return Status{
		DeviceID:         info.DeviceID,
		DeviceType:       info.DeviceType,
		IsOn:             state.IsOn,
		Brightness:       state.Brightness,
		ColorTemperature: state.ColorTemperature,
		Mode:             state.Mode,
		AvailableModes:   info.AvailableModes,
		MinTemperature:   info.MinTemperature,
		MaxTemperature:   info.MaxTemperature,
		Capabilities:     info.Capabilities,
		Endpoint:         info.Endpoint,
	}
}

// SetPower sets the power flag. Both values are always valid, so this never
// fails; setting the current value again is a no-op that still succeeds.
func (l *Light) SetPower(on bool) State {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.IsOn = on
	return l.state
}

// SetBrightness sets the brightness percentage after range validation.
func (l *Light) SetBrightness(value int) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.desc.ValidateBrightness(value); err != nil {
		return l.state, err
	}
	l.state.Brightness = value
	return l.state, nil
}

// SetTemperature sets the colour temperature after range validation.
func (l *Light) SetTemperature(value int) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.desc.ValidateTemperature(value); err != nil {
		return l.state, err
	}
	l.state.ColorTemperature = value
	return l.state, nil
}

// SetMode sets the preset mode after membership validation.
func (l *Light) SetMode(mode Mode) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.desc.ValidateMode(mode); err != nil {
		return l.state, err
	}
	l.state.Mode = mode
	return l.state, nil
}

// ApplySettings atomically replaces the whole state with the candidate.
//
// Every field is validated (brightness, then temperature, then mode) before
// any field is committed. If any validation fails, the state is untouched and
// the current state is returned with the error.
func (l *Light) ApplySettings(candidate State) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.desc.ValidateState(candidate); err != nil {
		return l.state, err
	}
	l.state = candidate
	return l.state, nil
}
