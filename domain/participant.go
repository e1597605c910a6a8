// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"time"
)

// Handle is the unique identity of a participant inside one room.
type Handle string

func (h Handle) Valid() bool {
	return strings.TrimSpace(string(h)) != "" && len(h) <= 64
}

type State int

const (
	StateActive State = iota
	StateMuted
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateMuted:
		return "muted"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// CanTransitionTo reports whether the participant state machine allows s -> next.
// Active and Muted flip between each other, both may end in Disconnected,
// and nothing leaves Disconnected.
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StateActive:
		return next == StateMuted || next == StateDisconnected || next == StateActive
	case StateMuted:
		return next == StateActive || next == StateDisconnected || next == StateMuted
	default:
		return false
	}
}

type Role int

const (
	RoleMember Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "member"
}

// Participant is a value copy of a registry entry.
type Participant struct {
	Handle   Handle
	Role     Role
	State    State
	JoinedAt time.Time
}

// CanSend is true only for active participants. Muted participants keep receiving.
func (p Participant) CanSend() bool {
	return p.State == StateActive
}

func (p Participant) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Issuer identifies who asked for a moderation action.
// System issuers bypass the admin check; they are used for automatic unmutes.
type Issuer struct {
	Handle Handle
	system bool
}

const systemHandle Handle = "system"

func UserIssuer(h Handle) Issuer {
	return Issuer{Handle: h}
}

func SystemIssuer() Issuer {
	return Issuer{Handle: systemHandle, system: true}
}

func (i Issuer) IsSystem() bool {
	return i.system
}
