package mqtt

import "testing"

func TestTopics(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"light state", topics.LightState("light-kitchen"), "lightsim/state/light/light-kitchen"},
		{"light command", topics.LightCommand("light-kitchen"), "lightsim/command/light/light-kitchen"},
		{"system status", topics.SystemStatus(), "lightsim/system/status"},
		{"all light states", topics.AllLightStates(), "lightsim/state/light/+"},
		{"all light commands", topics.AllLightCommands(), "lightsim/command/light/+"},
		{"all topics", topics.AllTopics(), "lightsim/#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestBuildStatusPayloads(t *testing.T) {
	online := buildOnlinePayload("lightsim")
	if online == "" {
		t.Fatal("online payload is empty")
	}

	offline := buildOfflinePayload("lightsim")
	if offline == "" {
		t.Fatal("offline payload is empty")
	}

	if online == offline {
		t.Error("online and offline payloads should differ")
	}
}
