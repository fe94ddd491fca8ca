// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"unicode/utf8"

	"inkwell/internal/models"
)

const (
	minUsernameLen = 3
	minPasswordLen = 3
	minTitleLen    = 3
	minContentLen  = 3
	maxTitleLen    = 200
	maxContentLen  = 20000
	maxCommentLen  = 10000
)

// ValidateUsername checks username length constraints.
func ValidateUsername(username string) error {
	if utf8.RuneCountInString(username) < minUsernameLen {
		return fmt.Errorf("username must be %d characters or more", minUsernameLen)
	}
	return nil
}

// ValidatePassword checks the plaintext password before it is hashed.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return fmt.Errorf("password must be %d characters or more", minPasswordLen)
	}
	return nil
}

// ValidateTitle checks post title constraints.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < minTitleLen {
		return fmt.Errorf("title must be %d characters or more", minTitleLen)
	}
	if n > maxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLen)
	}
	return nil
}

// ValidateContent checks post content constraints.
func ValidateContent(content string) error {
	n := utf8.RuneCountInString(content)
	if n < minContentLen {
		return fmt.Errorf("content must be %d characters or more", minContentLen)
	}
	if n > maxContentLen {
		return fmt.Errorf("content must not exceed %d characters", maxContentLen)
	}
	return nil
}

// ValidateComment checks comment content constraints.
func ValidateComment(content string) error {
	if content == "" {
		return fmt.Errorf("comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", maxCommentLen)
	}
	return nil
}

// ValidateReactions rejects negative counters.
func ValidateReactions(r models.Reactions) error {
	counts := map[string]int{
		"thumbsUp": r.ThumbsUp,
		"hooray":   r.Hooray,
		"heart":    r.Heart,
		"rocket":   r.Rocket,
		"eyes":     r.Eyes,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("reaction %q must not be negative", name)
		}
	}
	return nil
}
