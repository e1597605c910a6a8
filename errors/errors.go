package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrEmptyWords    = fmt.Errorf("no words have been found")
	ErrDuplicateWord = fmt.Errorf("duplicate censored word")

	ErrDuplicateHandle    = fmt.Errorf("handle already in use")
	ErrInvalidHandle      = fmt.Errorf("invalid handle")
	ErrUnknownParticipant = fmt.Errorf("unknown participant")
	ErrInvalidTransition  = fmt.Errorf("invalid state transition")
	ErrRoomClosed         = fmt.Errorf("room is closed")

	ErrSenderMuted   = fmt.Errorf("sender is muted")
	ErrSenderUnknown = fmt.Errorf("sender is not in the room")

	ErrNotAuthorized  = fmt.Errorf("not authorized")
	ErrInvalidCommand = fmt.Errorf("invalid moderation command")

	ErrFilterUnavailable = fmt.Errorf("profanity filter unavailable")
	ErrTransportClosed   = fmt.Errorf("transport closed")
)
