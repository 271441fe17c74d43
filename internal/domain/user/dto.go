package user

type LoginInput struct {
	Email    string `form:"email" binding:"required,email" example:"coder@example.com"`
	Password string `form:"password" binding:"required" example:"password123"`
}

// Record is one decoded line of the users CSV. RoleSet is false when the
// role cell was empty and Role holds the default.
type Record struct {
	Email        string   `json:"email"`
	Password     string   `json:"-"`
	AssignedJobs []string `json:"assigned_jobs"`
	Role         string   `json:"role"`
	RoleSet      bool     `json:"-"`
}

type ImportFailure struct {
	Row   int    `json:"row" example:"3"`
	Email string `json:"email" example:"bad@example.com"`
	Error string `json:"error" example:"password is required"`
}

type ImportResult struct {
	Created  int             `json:"created" example:"12"`
	Errors   int             `json:"errors" example:"1"`
	Failures []ImportFailure `json:"failures"`
}

type UserDTO struct {
	Email        string   `json:"email" example:"coder@example.com"`
	AssignedJobs []string `json:"assigned_jobs"`
	Role         Role     `json:"role" example:"coder"`
	CreatedAt    string   `json:"created_at" example:"2025-07-17 15:20:41"`
	UpdatedAt    string   `json:"updated_at" example:"2025-07-17 15:20:41"`
}

func ToDTO(u User) UserDTO {
	jobs := []string(u.AssignedJobs)
	if jobs == nil {
		jobs = []string{}
	}
	return UserDTO{
		Email:        u.Email,
		AssignedJobs: jobs,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
