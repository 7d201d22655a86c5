package domain

import "time"

// StatusPatch describes the completion-timestamp side effect of a status
// change. When Apply is false the update must leave completed_at exactly
// as it was; when Apply is true, completed_at must be written to
// CompletedAt (which is nil when leaving DONE).
type StatusPatch struct {
	Apply       bool
	CompletedAt *time.Time
}

// ApplyStatusTransition computes the completed_at side effect of moving a
// task from oldStatus to newStatus at the given time. Any status is
// reachable from any other; the only mandated side effect is:
//
//   - entering DONE from a non-DONE state stamps completed_at with now
//   - leaving DONE clears completed_at
//   - an update that keeps the status unchanged touches nothing
func ApplyStatusTransition(oldStatus, newStatus TaskStatus, now time.Time) StatusPatch {
	if newStatus == oldStatus {
		return StatusPatch{}
	}

	if newStatus == TaskStatusDone {
		completed := now.UTC()
		return StatusPatch{Apply: true, CompletedAt: &completed}
	}

	if oldStatus == TaskStatusDone {
		return StatusPatch{Apply: true, CompletedAt: nil}
	}

	return StatusPatch{}
}
