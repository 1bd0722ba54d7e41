package terminal

import (
	"errors"
	"sync"
)

// ErrServiceStopped is returned by Start after Stop
var ErrServiceStopped = errors.New("terminal service stopped")

// eventBuffer absorbs input bursts such as pasted text or fast wheel scrolling
const eventBuffer = 256

// Service runs the input poller of a Terminal and owns its init and teardown
type Service struct {
	term   Terminal
	events chan Event
	quit   chan struct{}
	done   chan struct{}

	mu    sync.Mutex
	state lifecycle
}

// NewService wraps term, Start initializes it
func NewService(term Terminal) *Service {
	return &Service{
		term:   term,
		events: make(chan Event, eventBuffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start initializes the terminal and begins polling, a second call is a no-op
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateLive:
		return nil
	case stateDone:
		return ErrServiceStopped
	}
	if err := s.term.Init(); err != nil {
		return err
	}
	s.state = stateLive
	SetCrashTerminal(s.term)
	Go(s.poll)
	return nil
}

func (s *Service) poll() {
	defer close(s.done)
	defer close(s.events)

	for {
		ev := s.term.PollEvent()
		if ev.Type == EventClosed {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Stop ends polling and restores the terminal
func (s *Service) Stop() {
	s.mu.Lock()
	live := s.state == stateLive
	s.state = stateDone
	s.mu.Unlock()
	if !live {
		return
	}

	close(s.quit)
	s.term.PostEvent(Event{Type: EventClosed})
	<-s.done

	s.term.Fini()
	SetCrashTerminal(nil)
}

// Events returns the input channel, closed once polling ends
func (s *Service) Events() <-chan Event {
	return s.events
}
