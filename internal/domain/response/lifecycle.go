package response

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	// StatusNew is virtual: it means no response row exists yet.
	StatusNew       Status = "new"
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

var (
	ErrAlreadySubmitted  = errors.New("response has already been submitted")
	ErrInvalidTransition = errors.New("invalid response status transition")
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusDraft, StatusSubmitted:
		return true
	default:
		return false
	}
}

// ReadOnly reports whether data in this status may no longer change.
func (s Status) ReadOnly() bool {
	return s == StatusSubmitted
}

// CanTransition reports whether a response in current may move to target.
// Nothing leaves submitted.
func CanTransition(current, target Status) bool {
	switch current {
	case StatusNew, StatusDraft:
		return target == StatusDraft || target == StatusSubmitted
	default:
		return false
	}
}

// Apply moves the response to target with the given grid data. CreatedAt is
// only set on the first save and Version is bumped on every accepted write.
func (r *Response) Apply(target Status, data []Answer, now time.Time) error {
	current := r.CurrentStatus()
	if current == StatusSubmitted {
		return ErrAlreadySubmitted
	}
	if !CanTransition(current, target) {
		return ErrInvalidTransition
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	if target == StatusSubmitted {
		submitted := now
		r.SubmittedAt = &submitted
	}
	r.Status = target
	r.Data = make(datatypes.JSONSlice[Answer], len(data))
	copy(r.Data, data)
	r.Version++
	return nil
}
