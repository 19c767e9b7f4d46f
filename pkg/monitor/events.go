// Package monitor collects run lifecycle events reported by the
// runner and fans them out to subscribers.
package monitor

import (
	"time"

	"digital.vasic.checks/pkg/check"
)

// EventType represents the type of run event.
type EventType string

const (
	EventRunState      EventType = "run_state"
	EventCheckStarted  EventType = "check_started"
	EventCheckFinished EventType = "check_finished"
)

// Event represents a lifecycle event during a run. Index is the
// position of the check in generator order and is -1 for run
// state events.
type Event struct {
	Type      EventType      `json:"type"`
	State     check.RunState `json:"state,omitempty"`
	Index     int            `json:"index"`
	Name      string         `json:"name,omitempty"`
	Status    check.Status   `json:"status,omitempty"`
	Message   string         `json:"message,omitempty"`
	Duration  time.Duration  `json:"duration,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
