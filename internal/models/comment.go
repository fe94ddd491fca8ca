package models

import (
	"time"
)

// Comment is a sub-entity of a post. Comments are append-only and carry no
// author: any authenticated user may comment on any post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
