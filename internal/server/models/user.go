// Package models contains the persisted entities of the service.
package models

import "time"

// User is a registered account. Hash holds the argon2id password hash and is
// never serialized outward.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate describes a partial profile edit. Nil fields keep the current
// value. Password changes are not supported.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}
