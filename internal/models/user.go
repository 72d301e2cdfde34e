package models

import "time"

// User is an account that can sign in to the private area.
// The password field holds the encoded hash and is never serialized.
type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	AccessCode string    `json:"accessCode,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InsertUser carries the fields needed to create a user. Password must
// already be hashed by the caller.
type InsertUser struct {
	Username   string
	Password   string
	AccessCode string
}

// UserUpdate is a partial update; nil fields are left unchanged.
type UserUpdate struct {
	AccessCode *string
	IsActive   *bool
}
