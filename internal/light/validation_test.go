package light

import (
	"errors"
	"testing"
)

func TestValidateBrightness(t *testing.T) {
	desc := NewDescriptor("light-test", "")

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 100, false},
		{"typical", 75, false},
		{"just below", -1, true},
		{"just above", 101, true},
		{"far out", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := desc.ValidateBrightness(tt.value)
			if tt.wantErr != (err != nil) {
				t.Errorf("ValidateBrightness(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatal("error is not a *RangeError")
			}
			if rangeErr.Field != "brightness" {
				t.Errorf("Field = %q, want %q", rangeErr.Field, "brightness")
			}
			if rangeErr.Min != 0 || rangeErr.Max != 100 {
				t.Errorf("bounds = [%d, %d], want [0, 100]", rangeErr.Min, rangeErr.Max)
			}
			if rangeErr.Value != tt.value {
				t.Errorf("Value = %d, want %d", rangeErr.Value, tt.value)
			}
		})
	}
}

func TestValidateTemperature(t *testing.T) {
	desc := NewDescriptor("light-test", "")

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lower bound", 2000, false},
		{"upper bound", 8000, false},
		{"typical", 4000, false},
		{"just below", 1999, true},
		{"just above", 8001, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := desc.ValidateTemperature(tt.value)
			if tt.wantErr != (err != nil) {
				t.Errorf("ValidateTemperature(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatal("error is not a *RangeError")
			}
			if rangeErr.Field != "color_temperature" {
				t.Errorf("Field = %q, want %q", rangeErr.Field, "color_temperature")
			}
			if rangeErr.Min != 2000 || rangeErr.Max != 8000 {
				t.Errorf("bounds = [%d, %d], want [2000, 8000]", rangeErr.Min, rangeErr.Max)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	desc := NewDescriptor("light-test", "")

	for _, mode := range AllModes() {
		if err := desc.ValidateMode(mode); err != nil {
			t.Errorf("ValidateMode(%q) unexpected error: %v", mode, err)
		}
	}

	tests := []Mode{"disco", "", "ECO", "eco "}
	for _, mode := range tests {
		err := desc.ValidateMode(mode)
		if !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ValidateMode(%q) error = %v, want ErrInvalidMode", mode, err)
		}
	}
}

func TestValidateState(t *testing.T) {
	desc := NewDescriptor("light-test", "")

	tests := []struct {
		name      string
		candidate State
		wantField string // "" means valid, "mode" means ModeError
	}{
		{"all valid", State{true, 50, 3000, ModeNormal}, ""},
		{"bad brightness first", State{true, 150, 9000, "disco"}, "brightness"},
		{"bad temperature second", State{true, 50, 9000, "disco"}, "color_temperature"},
		{"bad mode last", State{true, 50, 3000, "disco"}, "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := desc.ValidateState(tt.candidate)
			switch tt.wantField {
			case "":
				if err != nil {
					t.Errorf("ValidateState unexpected error: %v", err)
				}
			case "mode":
				if !errors.Is(err, ErrInvalidMode) {
					t.Errorf("error = %v, want ErrInvalidMode", err)
				}
			default:
				var rangeErr *RangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("error = %v, want *RangeError", err)
				}
				if rangeErr.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", rangeErr.Field, tt.wantField)
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	rangeErr := &RangeError{Field: "brightness", Min: 0, Max: 100, Value: 150}
	want := "light: brightness 150 out of range [0, 100]"
	if got := rangeErr.Error(); got != want {
		t.Errorf("RangeError.Error() = %q, want %q", got, want)
	}

	modeErr := &ModeError{Mode: "disco", Allowed: AllModes()}
	if got := modeErr.Error(); got == "" {
		t.Error("ModeError.Error() is empty")
	}
}

func TestNewEventID(t *testing.T) {
	a := NewEventID()
	b := NewEventID()
	if a == "" || b == "" {
		t.Fatal("NewEventID returned empty string")
	}
	if a == b {
		t.Error("NewEventID returned duplicate IDs")
	}
}
