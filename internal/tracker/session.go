package tracker

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

const fetchFailedMessage = "Could not fetch data. Please ensure the backend server is running."

// Session owns a State and keeps it in sync with the server by refetching
// both lists after every mutation. There is no optimistic local update.
type Session struct {
	client *Client

	mu    sync.Mutex
	state State
}

func NewSession(client *Client) *Session {
	return &Session{client: client, state: NewState()}
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OpenEditor and CloseEditor drive the edit modal.
func (s *Session) OpenEditor(kind Kind, tx Transaction) {
	s.update(func(st State) State { return OpenEditor(st, kind, tx) })
}

func (s *Session) CloseEditor() {
	s.update(CloseEditor)
}

// Refresh fetches both collections concurrently and replaces the lists.
// On failure the banner is set and the previous lists stay.
func (s *Session) Refresh(ctx context.Context) error {
	var incomes, expenses []Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.client.List(gctx, Income)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.client.List(gctx, Expense)
		return err
	})

	if err := g.Wait(); err != nil {
		s.update(func(st State) State { return Failed(st, fetchFailedMessage) })
		return err
	}

	s.update(func(st State) State { return Loaded(st, incomes, expenses) })
	return nil
}

func (s *Session) Add(ctx context.Context, kind Kind, input Input) error {
	if _, err := s.client.Add(ctx, kind, input); err != nil {
		s.fail("add", kind)
		return err
	}
	return s.Refresh(ctx)
}

// Update closes the editor only when the server accepted the change.
func (s *Session) Update(ctx context.Context, kind Kind, id string, input Input) error {
	if _, err := s.client.Update(ctx, kind, id, input); err != nil {
		s.fail("update", kind)
		return err
	}
	s.update(CloseEditor)
	return s.Refresh(ctx)
}

func (s *Session) Delete(ctx context.Context, kind Kind, id string) error {
	if err := s.client.Delete(ctx, kind, id); err != nil {
		s.fail("delete", kind)
		return err
	}
	return s.Refresh(ctx)
}

func (s *Session) fail(verb string, kind Kind) {
	message := "Could not " + verb + " " + string(kind) + "."
	s.update(func(st State) State { return Failed(st, message) })
}

func (s *Session) update(fn func(State) State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
}
