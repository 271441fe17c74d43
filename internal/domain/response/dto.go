package response

import "time"

// SaveInput carries the grid and the version token the client last saw.
// Version is 0 when the client believes no response exists yet.
type SaveInput struct {
	Grid    [][]string `json:"grid" binding:"required"`
	Version int        `json:"version" binding:"min=0" example:"3"`
}

type SubmitInput struct {
	SaveInput
	Confirm bool `json:"confirm" example:"true"`
}

type Filter struct {
	Status Status `form:"status" binding:"omitempty,oneof=draft submitted"`
	JobID  string `form:"job_id"`
}

// Summary is the admin listing row; it omits the answer data.
type Summary struct {
	ResponseID  string     `json:"response_id" example:"coder@example.com_referendums-2024"`
	UserEmail   string     `json:"user_email" example:"coder@example.com"`
	JobID       string     `json:"job_id" example:"referendums-2024"`
	Status      Status     `json:"status" example:"submitted"`
	Version     int        `json:"version" example:"4"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SubmittedAt *time.Time `json:"submitted_at"`
}

func Summarize(r Response) Summary {
	return Summary{
		ResponseID:  r.ResponseID,
		UserEmail:   r.UserEmail,
		JobID:       r.JobID,
		Status:      r.Status,
		Version:     r.Version,
		UpdatedAt:   r.UpdatedAt,
		SubmittedAt: r.SubmittedAt,
	}
}
