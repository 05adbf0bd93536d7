// Package protocol defines the wire format between the massbuild daemon
// and its clients.
//
// Messages are JSON envelopes carrying a command name and an optional
// payload. Each connection exchanges a single newline-delimited request
// and response. Build submissions mirror the build-time parameters of a
// CLI invocation.
package protocol
