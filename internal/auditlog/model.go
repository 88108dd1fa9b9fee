package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is an append-only record of sensitive actions (auth attempts,
// payment flows). Details carries free-form JSON context.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`
	Action    string         `gorm:"type:varchar(100);not null;index" json:"action"`
	Details   datatypes.JSON `json:"details,omitempty"`
	IPAddress string         `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	Status    string         `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
