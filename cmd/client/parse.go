package main

import (
	"chatroom/domain"
	"chatroom/errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Line is what one line typed in the terminal turns into.
type Line struct {
	Inbound domain.Inbound
	Quit    bool
}

// ParseLine reads a terminal line.
// Lines starting with "/" are commands:
//
//	/mute <handle> [seconds]
//	/unmute <handle>
//	/kick <handle> [reason]
//	/who
//	/quit
//
// Anything else is sent as a message. A line starting with "//" sends the text after the first slash.
func ParseLine(line string) (Line, error) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, "/") {
		return Line{Inbound: domain.Inbound{Text: line}}, nil
	}
	if strings.HasPrefix(line, "//") {
		return Line{Inbound: domain.Inbound{Text: line[1:]}}, nil
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return Line{}, fmt.Errorf("%w: empty command", errors.ErrInvalidCommand)
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return Line{Quit: true}, nil
	case "who":
		return Line{Inbound: domain.Inbound{Roster: true}}, nil
	case string(domain.ActionMute):
		if len(args) < 1 || len(args) > 2 {
			return Line{}, fmt.Errorf("%w: usage /mute <handle> [seconds]", errors.ErrInvalidCommand)
		}
		intent := domain.ModerationIntent{Action: name, Target: args[0]}
		if len(args) == 2 {
			seconds, err := strconv.Atoi(args[1])
			if err != nil {
				return Line{}, fmt.Errorf("%w: %q is not a number of seconds", errors.ErrInvalidCommand, args[1])
			}
			intent.DurationSeconds = lo.ToPtr(seconds)
		}
		return command(intent)
	case string(domain.ActionUnmute):
		if len(args) != 1 {
			return Line{}, fmt.Errorf("%w: usage /unmute <handle>", errors.ErrInvalidCommand)
		}
		return command(domain.ModerationIntent{Action: name, Target: args[0]})
	case string(domain.ActionKick):
		if len(args) < 1 {
			return Line{}, fmt.Errorf("%w: usage /kick <handle> [reason]", errors.ErrInvalidCommand)
		}
		return command(domain.ModerationIntent{Action: name, Target: args[0], Reason: strings.Join(args[1:], " ")})
	default:
		return Line{}, fmt.Errorf("%w: unknown command /%s", errors.ErrInvalidCommand, name)
	}
}

func command(intent domain.ModerationIntent) (Line, error) {
	if err := intent.Validate(); err != nil {
		return Line{}, err
	}
	return Line{Inbound: domain.Inbound{Command: &intent}}, nil
}
