package template

type UploadTemplateInput struct {
	JobID       string `form:"job_id" binding:"required,max=128" example:"referendums-2024"`
	Title       string `form:"title" binding:"required,max=255" example:"Referendums 2024"`
	Description string `form:"description" example:"Data collection for referendums"`
}

type TemplateSummary struct {
	JobID         string `json:"job_id" example:"referendums-2024"`
	Title         string `json:"title" example:"Referendums 2024"`
	Description   string `json:"description" example:"Data collection for referendums"`
	Version       int    `json:"version" example:"1"`
	QuestionCount int    `json:"question_count" example:"42"`
}

func Summarize(t Template) TemplateSummary {
	return TemplateSummary{
		JobID:         t.JobID,
		Title:         t.Title,
		Description:   t.Description,
		Version:       t.Version,
		QuestionCount: len(t.Questions),
	}
}
