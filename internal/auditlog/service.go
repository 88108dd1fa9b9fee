package auditlog

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/datatypes"
)

type Service interface {
	// LogAction records an action outcome. Logging failures are reported to
	// the server log only; they never fail the calling operation.
	LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip, status string)
	List(action string, limit, offset int) ([]AuditLog, int64, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip, status string) {
	var payload datatypes.JSON
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			log.Printf("auditlog: could not marshal details for %s: %v", action, err)
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	entry := &AuditLog{
		UserID:    userID,
		Action:    action,
		Details:   payload,
		IPAddress: ip,
		Status:    status,
	}
	if err := s.repo.Create(entry); err != nil {
		log.Printf("auditlog: could not persist %s: %v", action, err)
	}
}

func (s *service) List(action string, limit, offset int) ([]AuditLog, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(action, limit, offset)
}
