package model

import "time"

const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 5000
	PriorityMin       = 1
	PriorityMax       = 5
	DefaultPriority   = PriorityMin
)

// Note is a single user note. Time is the last-modified marker and is
// refreshed by the service on every mutation.
type Note struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description *string   `gorm:"size:5000" json:"description"`
	Priority    int       `gorm:"not null;default:1" json:"priority"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Time        time.Time `gorm:"not null" json:"time"`
}
