package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincentkoh/portfolio-backend/internal/models"
)

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	alice, err := s.CreateUser(ctx, models.InsertUser{Username: "alice", Password: "hash1", AccessCode: "AAAAAA"})
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, models.InsertUser{Username: "bob", Password: "hash2", AccessCode: "BBBBBB"})
	require.NoError(t, err)

	assert.Equal(t, 1, alice.ID)
	assert.Equal(t, 2, bob.ID)
	assert.True(t, alice.IsActive)
	assert.False(t, alice.CreatedAt.IsZero())
}

func TestGetUserByUsername(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.InsertUser{Username: "alice", Password: "hash"})
	require.NoError(t, err)

	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByAccessCodeSkipsInactive(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, models.InsertUser{Username: "alice", Password: "hash", AccessCode: "ABC123"})
	require.NoError(t, err)

	found, err := s.GetUserByAccessCode(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	inactive := false
	_, err = s.UpdateUser(ctx, user.ID, models.UserUpdate{IsActive: &inactive})
	require.NoError(t, err)

	_, err = s.GetUserByAccessCode(ctx, "ABC123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserMergesPartial(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, models.InsertUser{Username: "alice", Password: "hash", AccessCode: "ABC123"})
	require.NoError(t, err)

	code := "XYZ789"
	updated, err := s.UpdateUser(ctx, user.ID, models.UserUpdate{AccessCode: &code})
	require.NoError(t, err)

	assert.Equal(t, "XYZ789", updated.AccessCode)
	assert.Equal(t, "alice", updated.Username)
	assert.True(t, updated.IsActive)

	_, err = s.UpdateUser(ctx, 999, models.UserUpdate{AccessCode: &code})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactMessages(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	msg, err := s.CreateContactMessage(ctx, models.InsertContactMessage{
		Name: "Visitor", Email: "v@example.com", Subject: "Hi", Message: "Nice site, would hire.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, msg.ID)

	got, err := s.GetContactMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Visitor", got.Name)

	_, err = s.GetContactMessage(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := s.GetContactMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPersonalInfoLifecycle(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	_, err := s.GetPersonalInfo(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	info, err := s.CreatePersonalInfo(ctx, models.InsertPersonalInfo{
		UserID:   1,
		FullName: "Vincent Koh",
		Bio:      "Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, info.ID)
	assert.Equal(t, info.CreatedAt, info.UpdatedAt)

	bio := "Engineer and writer"
	updated, err := s.UpdatePersonalInfo(ctx, info.ID, models.PersonalInfoUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Engineer and writer", updated.Bio)
	assert.Equal(t, "Vincent Koh", updated.FullName)
	assert.Equal(t, info.ID, updated.ID)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	found, err := s.GetPersonalInfo(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Engineer and writer", found.Bio)
}

func TestJournalEntriesNewestFirst(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreateJournalEntry(ctx, models.InsertJournalEntry{
			UserID: 1, Title: title, Content: "content", IsPrivate: true,
		})
		require.NoError(t, err)
	}
	// Another user's entry must not leak into the listing
	_, err := s.CreateJournalEntry(ctx, models.InsertJournalEntry{
		UserID: 2, Title: "other", Content: "content", IsPrivate: true,
	})
	require.NoError(t, err)

	entries, err := s.GetJournalEntries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Title)
	assert.Equal(t, "second", entries[1].Title)
	assert.Equal(t, "first", entries[2].Title)
}

func TestUpdateJournalEntryMerges(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	entry, err := s.CreateJournalEntry(ctx, models.InsertJournalEntry{
		UserID: 1, Title: "Day 1", Content: "Hello", Mood: "calm",
		Tags: []string{"intro"}, IsPrivate: true,
	})
	require.NoError(t, err)

	content := "Hello again"
	updated, err := s.UpdateJournalEntry(ctx, entry.ID, models.JournalEntryUpdate{
		Content: &content,
		Tags:    []string{"intro", "update"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Day 1", updated.Title)
	assert.Equal(t, "Hello again", updated.Content)
	assert.Equal(t, "calm", updated.Mood)
	assert.Equal(t, []string{"intro", "update"}, updated.Tags)
	assert.True(t, updated.IsPrivate)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	_, err = s.UpdateJournalEntry(ctx, 999, models.JournalEntryUpdate{Content: &content})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteJournalEntry(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	entry, err := s.CreateJournalEntry(ctx, models.InsertJournalEntry{
		UserID: 1, Title: "Day 1", Content: "Hello", IsPrivate: true,
	})
	require.NoError(t, err)

	deleted, err := s.DeleteJournalEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteJournalEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	entries, err := s.GetJournalEntries(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalIDsNeverReused(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	first, err := s.CreateJournalEntry(ctx, models.InsertJournalEntry{
		UserID: 1, Title: "a", Content: "b", IsPrivate: true,
	})
	require.NoError(t, err)

	_, err = s.DeleteJournalEntry(ctx, first.ID)
	require.NoError(t, err)

	second, err := s.CreateJournalEntry(ctx, models.InsertJournalEntry{
		UserID: 1, Title: "c", Content: "d", IsPrivate: true,
	})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
