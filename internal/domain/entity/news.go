package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewsArticle is a news post. Unpublished drafts are visible to admins only.
type NewsArticle struct {
	ID        uuid.UUID
	Title     string
	Summary   string
	Content   string
	Image     string
	Date      string // Display date; listings sort newest first.
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
