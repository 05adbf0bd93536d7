package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/music-assistant/massbuild/internal/paths"
	"github.com/music-assistant/massbuild/internal/protocol"
)

var ErrClient = errors.New("client error")

// Represents the 'massbuild status' command.
type StatusCmd struct{}

// Executes the status command.
func (c *StatusCmd) Run(ctx context.Context) error {
	result, err := roundTrip[protocol.StatusResult](ctx, protocol.CmdStatus, nil)
	if err != nil {
		return err
	}

	fmt.Printf("version: %s\n", result.Version)
	fmt.Printf("pid:     %d\n", result.PID)
	fmt.Printf("uptime:  %ds\n", result.UptimeSec)
	fmt.Printf("builds:  %d\n", result.Builds)
	return nil
}

// Represents the 'massbuild shutdown' command.
type ShutdownCmd struct{}

// Executes the shutdown command.
func (c *ShutdownCmd) Run(ctx context.Context) error {
	_, err := roundTrip[struct{}](ctx, protocol.CmdShutdown, nil)
	return err
}

// Sends one command to the daemon and decodes the typed response payload.
//
// Connections are single-exchange: dial, send one envelope, read one
// envelope back, close.
func roundTrip[T any](ctx context.Context, cmd protocol.Command, payload any) (*T, error) {
	socketPath := RootCmd.Socket
	if socketPath == "" {
		socketPath = paths.Socket()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("%w: is the daemon running? %w", ErrClient, err)
	}
	defer conn.Close()

	data, err := protocol.Encode(cmd, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClient, err)
	}
	data = append(data, byte(10))

	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClient, err)
	}

	line, err := bufio.NewReader(conn).ReadBytes(byte(10))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClient, err)
	}

	env, raw, err := protocol.Decode(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClient, err)
	}

	if env.Command == protocol.CmdError {
		res, err := protocol.DecodePayload[protocol.ErrorResult](raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrClient, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrClient, res.Message)
	}

	var result T
	if len(raw) == 0 {
		return &result, nil
	}

	result, err = protocol.DecodePayload[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClient, err)
	}
	return &result, nil
}
