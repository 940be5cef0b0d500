// Package review provides the comment domain model and submission rules.
package review

import (
	"fmt"
	"strings"
	"time"
)

// Review body length limits, enforced before a submission request is made.
const (
	MinLength = 50
	MaxLength = 300
)

// Author summarizes the user who wrote a comment.
type Author struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

// Comment is a published review on an offer. Comments are append-only;
// the client never edits or deletes them.
type Comment struct {
	ID      string    `json:"id"`
	Comment string    `json:"comment"`
	Rating  float64   `json:"rating"`
	User    Author    `json:"user"`
	Date    time.Time `json:"date"`
}

// Draft is an unsubmitted review.
type Draft struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// Validate checks a draft against the submission rules: a rating of 1-5
// and a trimmed body within the length limits. The server stays
// authoritative; this only gates whether a request is attempted at all.
func (d Draft) Validate() error {
	if d.Rating < 1 || d.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", d.Rating)
	}
	n := len(strings.TrimSpace(d.Comment))
	if n < MinLength {
		return fmt.Errorf("review must be at least %d characters, got %d", MinLength, n)
	}
	if n > MaxLength {
		return fmt.Errorf("review must be at most %d characters, got %d", MaxLength, n)
	}
	return nil
}
