package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrProtocol = errors.New("protocol error")

// Command carried by a protocol envelope.
type Command string

const (
	CmdBuild    Command = "build"    // Run the two-phase build pipeline.
	CmdStatus   Command = "status"   // Query daemon status.
	CmdShutdown Command = "shutdown" // Request daemon shutdown.
	CmdOK       Command = "ok"       // Successful response.
	CmdError    Command = "error"    // Error response.
)

// Envelope framing a single request or response message.
//
// The payload is kept raw so the command can be inspected before the
// payload type is known.
type Envelope struct {
	Command Command         `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Submits a build to the daemon.
//
// The fields mirror the build-time parameters of a CLI invocation; paths
// are interpreted on the daemon's host.
type BuildRequest struct {
	Package      string `json:"package"`
	AppVersion   string `json:"app_version"`
	BaseVersion  string `json:"base_version"`
	Platform     string `json:"platform,omitempty"`
	Mirror       string `json:"mirror"`
	Requirements string `json:"requirements"`
	Dist         string `json:"dist"`
	Bases        string `json:"bases"`
	Config       string `json:"config,omitempty"`
	Output       string `json:"output,omitempty"`
}

// Reported after a successful build.
type BuildResult struct {
	Output string `json:"output"`
	Wheel  string `json:"wheel"`
}

// Reported for a status query.
type StatusResult struct {
	Version   string `json:"version"`
	PID       int    `json:"pid"`
	UptimeSec int64  `json:"uptime_sec"`
	Builds    int    `json:"builds"`
}

// Carried by an error response.
type ErrorResult struct {
	Message string `json:"message"`
}

// Serializes a command and payload into an envelope.
func Encode(cmd Command, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
		}
		raw = b
	}

	b, err := json.Marshal(Envelope{Command: cmd, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	return b, nil
}

// Parses an envelope, returning the command and the raw payload.
func Decode(data []byte) (Envelope, json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	if env.Command == "" {
		return Envelope{}, nil, fmt.Errorf("%w: missing command", ErrProtocol)
	}
	return env, env.Payload, nil
}

// Parses a typed payload out of a raw envelope payload.
func DecodePayload[T any](raw json.RawMessage) (T, error) {
	var payload T
	if len(raw) == 0 {
		return payload, fmt.Errorf("%w: missing payload", ErrProtocol)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	return payload, nil
}
