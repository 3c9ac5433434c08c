package light

import "github.com/google/uuid"

// Pre-computed mode set for O(1) lookups instead of O(n) linear search.
var validModes map[Mode]struct{}

func init() {
	validModes = make(map[Mode]struct{}, len(AllModes()))
	for _, m := range AllModes() {
		validModes[m] = struct{}{}
	}
}

// ValidateBrightness checks a brightness value against [MinBrightness, MaxBrightness].
func (d Descriptor) ValidateBrightness(value int) error {
	if value < MinBrightness || value > MaxBrightness {
		return &RangeError{
			Field: "brightness",
			Min:   MinBrightness,
			Max:   MaxBrightness,
			Value: value,
		}
	}
	return nil
}

// ValidateTemperature checks a colour temperature against the descriptor's bounds.
func (d Descriptor) ValidateTemperature(value int) error {
	if value < d.MinTemperature || value > d.MaxTemperature {
		return &RangeError{
			Field: "color_temperature",
			Min:   d.MinTemperature,
			Max:   d.MaxTemperature,
			Value: value,
		}
	}
	return nil
}

// ValidateMode checks a mode against the available mode set.
// Uses O(1) map lookup for efficiency.
func (d Descriptor) ValidateMode(mode Mode) error {
	if _, ok := validModes[mode]; ok {
		return nil
	}
	return &ModeError{
		Mode:    mode,
		Allowed: AllModes(),
	}
}

// ValidateState validates all mutable fields of a candidate state in a fixed
// order: brightness, then temperature, then mode. The first violation is
// returned; a nil result means the candidate may be committed wholesale.
func (d Descriptor) ValidateState(candidate State) error {
	if err := d.ValidateBrightness(candidate.Brightness); err != nil {
		return err
	}
	if err := d.ValidateTemperature(candidate.ColorTemperature); err != nil {
		return err
	}
	return d.ValidateMode(candidate.Mode)
}

// NewEventID creates a new UUID for state-change events.
func NewEventID() string {
	return uuid.New().String()
}
