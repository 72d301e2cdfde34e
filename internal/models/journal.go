package models

import "time"

// JournalEntry is a private diary entry owned by a single user.
type JournalEntry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InsertJournalEntry carries the fields needed to create a journal entry.
type InsertJournalEntry struct {
	UserID    int
	Title     string
	Content   string
	Mood      string
	Tags      []string
	IsPrivate bool
}

// JournalEntryUpdate is a partial update; nil fields are left unchanged.
// A non-nil empty Tags slice clears the tag list.
type JournalEntryUpdate struct {
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Mood      *string  `json:"mood"`
	Tags      []string `json:"tags"`
	IsPrivate *bool    `json:"isPrivate"`
}
