package monitor

import (
	"sync"
	"time"

	"digital.vasic.checks/pkg/check"
)

// Collector records run events and notifies handlers. It is
// safe for concurrent use, so it can observe a run using the
// parallel executor.
type Collector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    Stats
}

// Stats holds aggregate statistics over finished checks.
type Stats struct {
	Started int `json:"started"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
	Runs    int `json:"runs"`
	Setup   int `json:"setup_failures"`
}

// NewCollector creates a new event collector.
func NewCollector() *Collector {
	return &Collector{
		events: make([]Event, 0, 64),
	}
}

// OnEvent registers a handler to be called for each event.
func (c *Collector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *Collector) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	switch event.Type {
	case EventCheckStarted:
		c.stats.Started++
	case EventCheckFinished:
		switch event.Status {
		case check.StatusPassed:
			c.stats.Passed++
		case check.StatusFailed:
			c.stats.Failed++
		case check.StatusErrored:
			c.stats.Errored++
		}
	case EventRunState:
		switch event.State {
		case check.StateCompleted:
			c.stats.Runs++
		case check.StateSetupFailed:
			c.stats.Runs++
			c.stats.Setup++
		}
	}
	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// OnRunState records a run state transition.
func (c *Collector) OnRunState(state check.RunState) {
	c.Emit(Event{Type: EventRunState, State: state, Index: -1})
}

// OnCheckStarted records that the check at index started.
func (c *Collector) OnCheckStarted(index int, name string) {
	c.Emit(Event{Type: EventCheckStarted, Index: index, Name: name})
}

// OnCheckFinished records the outcome of the check at index.
func (c *Collector) OnCheckFinished(index int, outcome check.Outcome) {
	c.Emit(Event{
		Type:     EventCheckFinished,
		Index:    index,
		Name:     outcome.Name,
		Status:   outcome.Status,
		Message:  outcome.Message,
		Duration: outcome.Duration,
	})
}

// Events returns a copy of all collected events.
func (c *Collector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Event, len(c.events))
	copy(result, c.events)
	return result
}

// EventsByType returns the collected events of one type.
func (c *Collector) EventsByType(t EventType) []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var result []Event
	for _, e := range c.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// States returns the run states in the order they were
// reported.
func (c *Collector) States() []check.RunState {
	var states []check.RunState
	for _, e := range c.EventsByType(EventRunState) {
		states = append(states, e.State)
	}
	return states
}

// Stats returns the current aggregate statistics.
func (c *Collector) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Reset clears all collected events and statistics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = Stats{}
}
