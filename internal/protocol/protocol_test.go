package protocol

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	req := BuildRequest{
		Package:     "music-assistant",
		AppVersion:  "2.5.1",
		BaseVersion: "1.3.0",
		Mirror:      "https://wheels.example.org/",
	}

	data, err := Encode(CmdBuild, req)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, payload, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Command != CmdBuild {
		t.Fatalf("command = %q, want %q", env.Command, CmdBuild)
	}

	got, err := DecodePayload[BuildRequest](payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got != req {
		t.Fatalf("payload = %+v, want %+v", got, req)
	}
}

func TestEncodeNilPayload(t *testing.T) {
	data, err := Encode(CmdShutdown, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, payload, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Command != CmdShutdown {
		t.Fatalf("command = %q, want %q", env.Command, CmdShutdown)
	}
	if len(payload) != 0 {
		t.Fatalf("payload = %s, want empty", payload)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json"},
		{"missing command", `{"payload": {}}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode([]byte(tt.input)); !errors.Is(err, ErrProtocol) {
				t.Fatalf("err = %v, want ErrProtocol", err)
			}
		})
	}
}

func TestDecodePayloadErrors(t *testing.T) {
	if _, err := DecodePayload[BuildRequest](nil); !errors.Is(err, ErrProtocol) {
		t.Fatalf("err = %v, want ErrProtocol", err)
	}
	if _, err := DecodePayload[BuildRequest]([]byte(`"a string"`)); !errors.Is(err, ErrProtocol) {
		t.Fatalf("err = %v, want ErrProtocol", err)
	}
}
