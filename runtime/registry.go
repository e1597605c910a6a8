package runtime

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Member is a registry entry as seen by the chatroom: the participant and its sink.
type Member struct {
	domain.Participant
	Sink contract.OutboundSink

	// held by the chatroom for the duration of one send, keeps a sender's messages in order
	order *sync.Mutex
}

// Snapshot is an immutable point-in-time copy of the membership.
type Snapshot struct {
	Revision uint64
	Members  []Member
}

func (s Snapshot) Participants() []domain.Participant {
	res := make([]domain.Participant, len(s.Members))
	for i, m := range s.Members {
		res[i] = m.Participant
	}
	return res
}

type entry struct {
	participant domain.Participant
	sink        contract.OutboundSink
	order       *sync.Mutex
	seq         uint64
}

// Registry is the membership table of one room.
// Every mutation and every snapshot goes through the same lock,
// so readers never see a half-updated entry.
type Registry struct {
	mu       sync.RWMutex
	members  map[domain.Handle]*entry
	revision uint64
	seq      uint64
	closed   bool
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		members: make(map[domain.Handle]*entry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Join registers a participant and its only outbound sink.
func (r *Registry) Join(handle domain.Handle, role domain.Role, sink contract.OutboundSink) (domain.Participant, error) {
	if !handle.Valid() {
		return domain.Participant{}, fmt.Errorf("%w: %q", errors.ErrInvalidHandle, handle)
	}
	if sink == nil {
		return domain.Participant{}, fmt.Errorf("%w: no sink for %q", errors.ErrTransportClosed, handle)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return domain.Participant{}, fmt.Errorf("%w: %q", errors.ErrRoomClosed, handle)
	}
	if _, ok := r.members[handle]; ok {
		return domain.Participant{}, fmt.Errorf("%w: %q", errors.ErrDuplicateHandle, handle)
	}
	r.seq++
	p := domain.Participant{
		Handle:   handle,
		Role:     role,
		State:    domain.StateActive,
		JoinedAt: r.now(),
	}
	r.members[handle] = &entry{participant: p, sink: sink, order: &sync.Mutex{}, seq: r.seq}
	r.revision++
	return p, nil
}

// Leave removes the participant. Removing an absent handle is a no-op.
// A non-nil sink only removes the entry still holding that sink, so a connection
// that outlived its membership cannot evict the next holder of the handle.
// The removed member is returned with the Disconnected state so the caller can close its sink.
func (r *Registry) Leave(handle domain.Handle, sink contract.OutboundSink) (Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.members[handle]
	if !ok || (sink != nil && e.sink != sink) {
		return Member{}, false
	}
	delete(r.members, handle)
	r.revision++

	m := e.member()
	m.State = domain.StateDisconnected
	return m, true
}

// SetState moves a participant between Active and Muted.
// Disconnecting goes through Leave so that the entry is removed, never just marked.
func (r *Registry) SetState(handle domain.Handle, state domain.State) (domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.members[handle]
	if !ok {
		return domain.Participant{}, fmt.Errorf("%w: %q", errors.ErrUnknownParticipant, handle)
	}
	if state == domain.StateDisconnected || !e.participant.State.CanTransitionTo(state) {
		return domain.Participant{}, fmt.Errorf("%w: %s to %s", errors.ErrInvalidTransition, e.participant.State, state)
	}
	if e.participant.State != state {
		e.participant.State = state
		r.revision++
	}
	return e.participant, nil
}

func (r *Registry) Get(handle domain.Handle) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.members[handle]
	if !ok {
		return Member{}, fmt.Errorf("%w: %q", errors.ErrUnknownParticipant, handle)
	}
	return e.member(), nil
}

// Snapshot copies the membership under the lock, ordered by join time.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*entry, 0, len(r.members))
	for _, e := range r.members {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	members := make([]Member, len(entries))
	for i, e := range entries {
		members[i] = e.member()
	}
	return Snapshot{Revision: r.revision, Members: members}
}

// Close removes every participant and refuses any later Join.
// The removed members come back in join order.
func (r *Registry) Close() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]*entry, 0, len(r.members))
	for _, e := range r.members {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	members := make([]Member, len(entries))
	for i, e := range entries {
		members[i] = e.member()
		members[i].State = domain.StateDisconnected
	}
	if len(entries) > 0 {
		r.revision++
	}
	r.members = make(map[domain.Handle]*entry)
	r.closed = true
	return members
}

func (r *Registry) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (e *entry) member() Member {
	return Member{Participant: e.participant, Sink: e.sink, order: e.order}
}
