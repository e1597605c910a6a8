package main

import (
	"chatroom/domain"
	"chatroom/errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Line
	}{
		{"plain text", "hello there", Line{Inbound: domain.Inbound{Text: "hello there"}}},
		{"escaped slash", "//not a command", Line{Inbound: domain.Inbound{Text: "/not a command"}}},
		{"who", "/who", Line{Inbound: domain.Inbound{Roster: true}}},
		{"quit", "/quit", Line{Quit: true}},
		{"permanent mute", "/mute bob", Line{Inbound: domain.Inbound{Command: &domain.ModerationIntent{Action: "mute", Target: "bob"}}}},
		{"timed mute", "/mute bob 30", Line{Inbound: domain.Inbound{Command: &domain.ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(30)}}}},
		{"unmute", "/unmute bob", Line{Inbound: domain.Inbound{Command: &domain.ModerationIntent{Action: "unmute", Target: "bob"}}}},
		{"kick with reason", "/kick carol too much spam", Line{Inbound: domain.Inbound{Command: &domain.ModerationIntent{Action: "kick", Target: "carol", Reason: "too much spam"}}}},
		{"upper case command", "/KICK carol", Line{Inbound: domain.Inbound{Command: &domain.ModerationIntent{Action: "kick", Target: "carol"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Invalid(t *testing.T) {
	for _, line := range []string{
		"/",
		"/dance",
		"/mute",
		"/mute bob soon",
		"/mute bob 0",
		"/unmute",
		"/unmute bob alice",
		"/kick",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseLine(line)
			require.ErrorIs(t, err, errors.ErrInvalidCommand)
		})
	}
}
