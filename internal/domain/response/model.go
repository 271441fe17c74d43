package response

import (
	"time"

	"gorm.io/datatypes"
)

// Answer is a denormalized snapshot of one grid row, index-aligned with the
// template's questions at save time.
type Answer struct {
	ID         string `json:"id"`
	Item       string `json:"item"`
	Answer     string `json:"answer"`
	Source     string `json:"source"`
	Definition string `json:"definition"`
	Comment    string `json:"comment"`
}

// Response holds one coder's answers to one template. At most one exists per
// (user, job) pair because the key is derived from both.
type Response struct {
	ResponseID  string                      `gorm:"primaryKey;size:400" json:"response_id"`
	UserEmail   string                      `gorm:"size:255;not null;index" json:"user_email"`
	JobID       string                      `gorm:"size:128;not null;index" json:"job_id"`
	Status      Status                      `gorm:"size:16;not null;index" json:"status"`
	Data        datatypes.JSONSlice[Answer] `json:"data"`
	Version     int                         `gorm:"not null;default:0" json:"version"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime:false" json:"updated_at"`
	SubmittedAt *time.Time                  `json:"submitted_at"`
}

// ID builds the composite response key for a user and job.
func ID(email, jobID string) string {
	return email + "_" + jobID
}

// New returns the virtual "new" response for a user and job. It is not
// persisted until the first save.
func New(email, jobID string) *Response {
	return &Response{
		ResponseID: ID(email, jobID),
		UserEmail:  email,
		JobID:      jobID,
		Status:     StatusNew,
	}
}

// IsNew reports whether the response has never been saved.
func (r *Response) IsNew() bool {
	return r == nil || r.Status == StatusNew || r.Status == ""
}

// CurrentStatus treats a missing response as new.
func (r *Response) CurrentStatus() Status {
	if r.IsNew() {
		return StatusNew
	}
	return r.Status
}
