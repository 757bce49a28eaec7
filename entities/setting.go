package entities

import (
	"github.com/google/uuid"
)

// CommissionSetting is a single-row table; the latest row wins.
type CommissionSetting struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Rate float64   `json:"rate"` // fraction of order total, 0 < rate < 1

	Timestamp
}
