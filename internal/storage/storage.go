package storage

import (
	"context"
	"errors"

	"github.com/vincentkoh/portfolio-backend/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Storage is the persistence contract for all entities. The default backend
// is in-memory; a Postgres backend can be selected via configuration. Both
// preserve the same ordering and upsert semantics.
type Storage interface {
	// User operations
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByAccessCode only matches active users.
	GetUserByAccessCode(ctx context.Context, accessCode string) (*models.User, error)
	CreateUser(ctx context.Context, user models.InsertUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int, update models.UserUpdate) (*models.User, error)

	// Contact message operations
	CreateContactMessage(ctx context.Context, msg models.InsertContactMessage) (*models.ContactMessage, error)
	GetContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	GetContactMessage(ctx context.Context, id int) (*models.ContactMessage, error)

	// Personal info operations (one record per user, looked up by user id)
	GetPersonalInfo(ctx context.Context, userID int) (*models.PersonalInfo, error)
	CreatePersonalInfo(ctx context.Context, info models.InsertPersonalInfo) (*models.PersonalInfo, error)
	UpdatePersonalInfo(ctx context.Context, id int, update models.PersonalInfoUpdate) (*models.PersonalInfo, error)

	// Journal entry operations. GetJournalEntries returns the user's entries
	// newest first; callers depend on that ordering.
	GetJournalEntries(ctx context.Context, userID int) ([]models.JournalEntry, error)
	GetJournalEntry(ctx context.Context, id int) (*models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, entry models.InsertJournalEntry) (*models.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, id int, update models.JournalEntryUpdate) (*models.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, id int) (bool, error)
}
