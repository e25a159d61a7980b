package models

import "time"

// Bookmark is a saved link owned by exactly one user.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookmarkUpdate describes a partial bookmark edit. Nil fields keep the
// current value.
type BookmarkUpdate struct {
	Title       *string
	Description *string
	Link        *string
}
