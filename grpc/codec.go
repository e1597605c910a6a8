package grpc

import (
	"chatroom/domain"
	"chatroom/errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	typeMessage = "message"
	typeCommand = "command"
	typeWho     = "who"
	typeNotice  = "notice"
	typeError   = "error"
	typeRoster  = "roster"
)

// EncodeFrame converts an outbound frame for the wire.
func EncodeFrame(f domain.Frame) (*structpb.Struct, error) {
	fields := map[string]any{
		"type": f.Kind.String(),
		"text": f.Text,
		"at":   f.At.UTC().Format(time.RFC3339Nano),
	}
	switch f.Kind {
	case domain.FrameMessage:
		fields["id"] = f.MessageID.String()
		fields["from"] = string(f.From)
	case domain.FrameRoster:
		fields["members"] = lo.Map(f.Roster, func(p domain.Participant, _ int) any {
			return map[string]any{
				"handle": string(p.Handle),
				"role":   p.Role.String(),
				"state":  p.State.String(),
			}
		})
	}
	return structpb.NewStruct(fields)
}

// DecodeFrame is the client side of EncodeFrame.
func DecodeFrame(s *structpb.Struct) (domain.Frame, error) {
	fields := s.GetFields()
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return domain.Frame{}, fmt.Errorf("invalid frame time: %w", err)
	}
	f := domain.Frame{Text: fields["text"].GetStringValue(), At: at.UTC()}

	switch kind := fields["type"].GetStringValue(); kind {
	case typeMessage:
		f.Kind = domain.FrameMessage
		f.From = domain.Handle(fields["from"].GetStringValue())
		if f.MessageID, err = uuid.Parse(fields["id"].GetStringValue()); err != nil {
			return domain.Frame{}, fmt.Errorf("invalid message id: %w", err)
		}
	case typeNotice:
		f.Kind = domain.FrameNotice
	case typeError:
		f.Kind = domain.FrameError
	case typeRoster:
		f.Kind = domain.FrameRoster
		for _, v := range fields["members"].GetListValue().GetValues() {
			m := v.GetStructValue().GetFields()
			f.Roster = append(f.Roster, domain.Participant{
				Handle: domain.Handle(m["handle"].GetStringValue()),
				Role:   parseRole(m["role"].GetStringValue()),
				State:  parseState(m["state"].GetStringValue()),
			})
		}
	default:
		return domain.Frame{}, fmt.Errorf("unknown frame type %q", kind)
	}
	return f, nil
}

// EncodeInbound converts what a participant wants to send for the wire.
func EncodeInbound(in domain.Inbound) (*structpb.Struct, error) {
	switch {
	case in.Command != nil:
		fields := map[string]any{
			"type":   typeCommand,
			"action": in.Command.Action,
			"target": in.Command.Target,
			"reason": in.Command.Reason,
		}
		if in.Command.DurationSeconds != nil {
			fields["durationSeconds"] = *in.Command.DurationSeconds
		}
		return structpb.NewStruct(fields)
	case in.Roster:
		return structpb.NewStruct(map[string]any{"type": typeWho})
	default:
		return structpb.NewStruct(map[string]any{"type": typeMessage, "text": in.Text})
	}
}

// DecodeInbound is the server side of EncodeInbound.
// Malformed frames return errors.ErrInvalidCommand.
func DecodeInbound(s *structpb.Struct) (domain.Inbound, error) {
	fields := s.GetFields()
	switch kind := fields["type"].GetStringValue(); kind {
	case typeMessage:
		return domain.Inbound{Text: fields["text"].GetStringValue()}, nil
	case typeWho:
		return domain.Inbound{Roster: true}, nil
	case typeCommand:
		intent := domain.ModerationIntent{
			Action: fields["action"].GetStringValue(),
			Target: fields["target"].GetStringValue(),
			Reason: fields["reason"].GetStringValue(),
		}
		if v, ok := fields["durationSeconds"]; ok {
			if _, isNumber := v.GetKind().(*structpb.Value_NumberValue); !isNumber {
				return domain.Inbound{}, fmt.Errorf("%w: durationSeconds must be a number", errors.ErrInvalidCommand)
			}
			n := v.GetNumberValue()
			if n != math.Trunc(n) || n < 1 || n > domain.MaxMuteSeconds {
				return domain.Inbound{}, fmt.Errorf("%w: durationSeconds must be a whole number of seconds between 1 and %d",
					errors.ErrInvalidCommand, domain.MaxMuteSeconds)
			}
			intent.DurationSeconds = lo.ToPtr(int(n))
		}
		return domain.Inbound{Command: &intent}, nil
	default:
		return domain.Inbound{}, fmt.Errorf("%w: unknown frame type %q", errors.ErrInvalidCommand, kind)
	}
}

func parseRole(s string) domain.Role {
	if s == domain.RoleAdmin.String() {
		return domain.RoleAdmin
	}
	return domain.RoleMember
}

func parseState(s string) domain.State {
	switch s {
	case domain.StateActive.String():
		return domain.StateActive
	case domain.StateMuted.String():
		return domain.StateMuted
	default:
		return domain.StateDisconnected
	}
}
