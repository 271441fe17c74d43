package utils

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/domain/audit"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/pkg/logger"
)

// AuditEntry describes one audited action. Actor and client details are
// filled in from the request by LogAuditFromRequest.
type AuditEntry struct {
	Action       string
	ResourceType string
	ResourceID   string
	Before       any
	After        any
	Description  string
}

// LogAuditFromRequest records entry in the background. Failures are logged
// and never surface to the caller.
var LogAuditFromRequest = func(c *gin.Context, entry AuditEntry, repo repository.AuditRepo, log *logger.Logger) {
	// gin reuses the context once the handler returns.
	actor, _ := GetEmailFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(context.Background(), actor, ip, ua, entry, repo, log); err != nil {
			log.Error("audit log write failed", "action", entry.Action, "resource_id", entry.ResourceID, "error", err)
		}
	}()
}

var LogAudit = func(
	ctx context.Context,
	actor string,
	ip string,
	ua string,
	entry AuditEntry,
	repo repository.AuditRepo,
	log *logger.Logger,
) error {
	auditLog := &audit.AuditLog{
		ActorEmail:   actor,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		OldData:      marshalAuditData(entry.Before, log),
		NewData:      marshalAuditData(entry.After, log),
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  entry.Description,
	}

	return repo.CreateAuditLog(ctx, auditLog)
}

func marshalAuditData(v any, log *logger.Logger) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("audit marshal failed", "error", err)
		return nil
	}
	return data
}
