package entity

import (
	"time"

	"github.com/google/uuid"
)

// GovernanceDocument is a downloadable constitution/minutes/policy file.
// Order is assigned on creation (max existing order + 1) and rewritten by the
// reorder operation.
type GovernanceDocument struct {
	ID        uuid.UUID
	Title     string
	FileURL   string
	FileType  string // pdf, doc or docx.
	FileSize  int64
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
