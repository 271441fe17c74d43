package template

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type AnswerType string

const (
	AnswerTypeText     AnswerType = "text"
	AnswerTypeDropdown AnswerType = "dropdown"
)

// Question is one row of a template. Source and Comment are filled in by
// coders and are always empty on a template.
type Question struct {
	ID            string     `json:"id"`
	Item          string     `json:"item"`
	Definition    string     `json:"definition"`
	AnswerType    AnswerType `json:"answer_type"`
	AnswerOptions []string   `json:"answer_options"`
	Source        string     `json:"source"`
	Comment       string     `json:"comment"`
}

// Template is keyed by the admin-assigned job id. Questions are stored in
// presentation order.
type Template struct {
	JobID        string                        `gorm:"primaryKey;size:128" json:"job_id"`
	Title        string                        `gorm:"size:255;not null" json:"title"`
	Description  string                        `gorm:"type:text" json:"description"`
	Questions    datatypes.JSONSlice[Question] `json:"questions"`
	Version      int                           `gorm:"not null;default:1" json:"version"`
	SourceObject string                        `gorm:"size:512" json:"source_object,omitempty"`
	CreatedAt    time.Time                     `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt    time.Time                     `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// SourceObjectKey is where the uploaded CSV of a template version is archived.
func SourceObjectKey(jobID string, version int) string {
	return fmt.Sprintf("templates/%s/v%d.csv", jobID, version)
}
