// internal/models/session.go
package models

import "time"

// SessionRowID is the fixed primary key of the singleton admin session row.
const SessionRowID int64 = 1

// AdminSession holds the one active admin session. A new login overwrites
// the row with a fresh token id, so at most one token validates at a time;
// logout clears the row.
type AdminSession struct {
	ID      int64     `json:"-" gorm:"primaryKey"`
	TokenID string    `json:"-" gorm:"size:36;not null"`
	LoginAt time.Time `json:"login_at"`
}
