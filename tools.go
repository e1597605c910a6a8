//go:build tools
// +build tools

// Package tools pins the code generators used by `go generate` (mockgen for
// the mocks package) so they are versioned in go.mod like any other dependency.
package chatroom

import (
	_ "go.uber.org/mock/mockgen"
)
