package models

import "time"

// AuditFields are the creation columns carried by every written row.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy int64     `db:"created_by"`
}
