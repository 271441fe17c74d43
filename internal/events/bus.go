// Package events fans response lifecycle changes out to live subscribers.
package events

import (
	"context"
	"time"
)

const (
	TypeResponseSaved     = "response.saved"
	TypeResponseSubmitted = "response.submitted"
	TypeTemplateUploaded  = "template.uploaded"
)

type Event struct {
	Type       string    `json:"type"`
	ResponseID string    `json:"response_id,omitempty"`
	JobID      string    `json:"job_id"`
	UserEmail  string    `json:"user_email,omitempty"`
	Status     string    `json:"status,omitempty"`
	Version    int       `json:"version"`
	At         time.Time `json:"at"`
}

type Bus interface {
	Publish(ctx context.Context, evt Event) error
	// Subscribe returns a channel of events and a function that releases it.
	Subscribe() (<-chan Event, func())
	Close() error
}
