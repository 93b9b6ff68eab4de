package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Date        string    `gorm:"type:varchar(50);not null;index"`
	Time        string    `gorm:"type:varchar(50)"`
	Location    string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100)"`
	Image       string    `gorm:"type:text"`
	Website     string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// ActivityModel mirrors the 'activities' table. DayRank is a stored copy of
// the weekday position so listings can sort in SQL.
type ActivityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Day         string    `gorm:"type:varchar(20);not null"`
	DayRank     int       `gorm:"not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Time        string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text"`
	Contact     string    `gorm:"type:varchar(255)"`
	Order       int       `gorm:"column:sort_order;not null;default:0"`
	IsVisible   bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// CommitteeMemberModel mirrors the 'committee_members' table.
type CommitteeMemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Position  string    `gorm:"type:varchar(255)"`
	Bio       string    `gorm:"type:text"`
	Image     string    `gorm:"type:text"`
	Order     int       `gorm:"column:sort_order;not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommitteeMemberModel) TableName() string {
	return "committee_members"
}

// AssociatedGroupModel mirrors the 'associated_groups' table.
type AssociatedGroupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Schedule    string    `gorm:"type:varchar(255)"`
	Contact     string    `gorm:"type:varchar(255)"`
	Website     string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssociatedGroupModel) TableName() string {
	return "associated_groups"
}

// NewsArticleModel mirrors the 'news_articles' table.
type NewsArticleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Summary   string    `gorm:"type:text"`
	Content   string    `gorm:"type:text"`
	Image     string    `gorm:"type:text"`
	Date      string    `gorm:"type:varchar(50);not null;index"`
	Published bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsArticleModel) TableName() string {
	return "news_articles"
}
