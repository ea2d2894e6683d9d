package remote

import (
	"encoding/json"
	"testing"
)

func TestParseClientMessage(t *testing.T) {
	tests := []struct {
		name    string
		frame   string
		ok      bool
		msgType string
	}{
		{"auth", `{"type":"auth","token":"abc123"}`, true, "auth"},
		{"plain command", `{"type":"togglePlay"}`, true, "togglePlay"},
		{"volume", `{"type":"volume","value":0.42}`, true, "volume"},
		{"unknown type kept", `{"type":"teleport"}`, true, "teleport"},
		{"missing type", `{"value":1}`, true, ""},
		{"not json", `next please`, false, ""},
		{"truncated", `{"type":"next"`, false, ""},
	}

	for _, test := range tests {
		msg, ok := parseClientMessage([]byte(test.frame))
		if ok != test.ok {
			t.Errorf("%s: ok = %v, want %v", test.name, ok, test.ok)
			continue
		}
		if ok && msg.Type != test.msgType {
			t.Errorf("%s: type = %q, want %q", test.name, msg.Type, test.msgType)
		}
	}
}

func TestParseVolumeValue(t *testing.T) {
	msg, ok := parseClientMessage([]byte(`{"type":"volume","value":0.42}`))
	if !ok || msg.Value == nil {
		t.Fatal("volume frame should parse with a value")
	}
	if *msg.Value != 0.42 {
		t.Errorf("value = %v, want 0.42", *msg.Value)
	}

	// A volume frame without a value parses but carries nil.
	msg, ok = parseClientMessage([]byte(`{"type":"volume"}`))
	if !ok || msg.Value != nil {
		t.Fatal("valueless volume frame should parse with nil value")
	}
}

func TestStateMessageInlinesFields(t *testing.T) {
	data, err := json.Marshal(stateMessage{
		Type: msgState,
		RadioState: RadioState{
			StationID:   "truckersfm",
			StationName: "Truckers.FM",
			Country:     "United Kingdom",
			Volume:      0.8,
			Playing:     true,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["type"] != "state" {
		t.Errorf("type = %v, want state", decoded["type"])
	}
	if decoded["stationName"] != "Truckers.FM" {
		t.Errorf("stationName = %v, want Truckers.FM", decoded["stationName"])
	}
	if decoded["volume"] != 0.8 {
		t.Errorf("volume = %v, want 0.8", decoded["volume"])
	}
}
