package models

import (
	"time"
)

// Reactions holds the emoji reaction counters for a post. Writes replace
// the whole set; counters are never incremented in place.
type Reactions struct {
	ThumbsUp int `gorm:"not null;default:0" json:"thumbsUp"`
	Hooray   int `gorm:"not null;default:0" json:"hooray"`
	Heart    int `gorm:"not null;default:0" json:"heart"`
	Rocket   int `gorm:"not null;default:0" json:"rocket"`
	Eyes     int `gorm:"not null;default:0" json:"eyes"`
}

// Post represents a blog post in the Inkwell application.
//
// CreatedAt is immutable after creation. LastModified is assigned by the
// service layer on create and on title/content updates only; comment and
// reaction writes leave it untouched, which is why the field deliberately
// avoids gorm's UpdatedAt auto-tracking.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"user"`
	Comments     []Comment `gorm:"foreignKey:PostID" json:"comments"`
	Reactions    Reactions `gorm:"embedded;embeddedPrefix:reaction_" json:"reactions"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	LastModified time.Time `gorm:"not null" json:"last_modified"`
}
