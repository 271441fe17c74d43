package audit

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionUpload = "upload"
	ActionImport = "import"
	ActionSave   = "save"
	ActionSubmit = "submit"
)

const (
	ResourceTemplate = "template"
	ResourceUsers    = "users"
	ResourceResponse = "response"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ActorEmail   string         `gorm:"size:255;index" json:"actor_email"`
	Action       string         `gorm:"size:32;index" json:"action"`
	ResourceType string         `gorm:"size:32;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:400" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"size:512" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}
