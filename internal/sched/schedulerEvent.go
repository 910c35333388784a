// internal/sched/schedulerEvent.go

package sched

import (
	"time"
)

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusEnqueue      StatusKind = iota // region admitted
	StatusReject                         // region refused, scheduler full
	StatusDispatch                       // region handed back to the caller
	StatusEvict                          // empty region dropped while looking for a task
	StatusTaskDispatch                   // task handed back to the caller
	StatusReconfigure                    // region re-queued after a policy change
)

// StatusEvent is emitted on every structural change of the scheduler.
type StatusEvent struct {
	Time    time.Time
	Kind    StatusKind
	Region  int // priority of the region involved
	TaskID  int // zero unless Kind is StatusTaskDispatch
	Regions int // regions scheduled after the change
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusEnqueue:
		return "Enqueue"
	case StatusReject:
		return "Reject"
	case StatusDispatch:
		return "Dispatch"
	case StatusEvict:
		return "Evict"
	case StatusTaskDispatch:
		return "TaskDispatch"
	case StatusReconfigure:
		return "Reconfigure"
	default:
		return "Unknown"
	}
}
