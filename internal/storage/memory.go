package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vincentkoh/portfolio-backend/internal/models"
)

// MemStorage keeps all entities in process memory. Data is lost on restart.
// Identifiers are sequential per collection and never reused. A mutex guards
// the maps because the HTTP server handles requests concurrently.
type MemStorage struct {
	mu sync.RWMutex

	users           map[int]models.User
	contactMessages map[int]models.ContactMessage
	personalInfos   map[int]models.PersonalInfo
	journalEntries  map[int]models.JournalEntry

	nextUserID         int
	nextMessageID      int
	nextPersonalInfoID int
	nextJournalEntryID int
}

// NewMemStorage returns an empty in-memory store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:              make(map[int]models.User),
		contactMessages:    make(map[int]models.ContactMessage),
		personalInfos:      make(map[int]models.PersonalInfo),
		journalEntries:     make(map[int]models.JournalEntry),
		nextUserID:         1,
		nextMessageID:      1,
		nextPersonalInfoID: 1,
		nextJournalEntryID: 1,
	}
}

func (s *MemStorage) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) GetUserByAccessCode(_ context.Context, accessCode string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.AccessCode == accessCode && user.IsActive {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateUser(_ context.Context, insert models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:         s.nextUserID,
		Username:   insert.Username,
		Password:   insert.Password,
		AccessCode: insert.AccessCode,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemStorage) UpdateUser(_ context.Context, id int, update models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.AccessCode != nil {
		user.AccessCode = *update.AccessCode
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	s.users[id] = user
	return &user, nil
}

func (s *MemStorage) CreateContactMessage(_ context.Context, insert models.InsertContactMessage) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ContactMessage{
		ID:        s.nextMessageID,
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now(),
	}
	s.nextMessageID++
	s.contactMessages[msg.ID] = msg
	return &msg, nil
}

func (s *MemStorage) GetContactMessages(_ context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.ContactMessage, 0, len(s.contactMessages))
	for _, msg := range s.contactMessages {
		messages = append(messages, msg)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].ID < messages[j].ID
	})
	return messages, nil
}

func (s *MemStorage) GetContactMessage(_ context.Context, id int) (*models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.contactMessages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &msg, nil
}

func (s *MemStorage) GetPersonalInfo(_ context.Context, userID int) (*models.PersonalInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, info := range s.personalInfos {
		if info.UserID == userID {
			i := info
			return &i, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreatePersonalInfo(_ context.Context, insert models.InsertPersonalInfo) (*models.PersonalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	info := models.PersonalInfo{
		ID:          s.nextPersonalInfoID,
		UserID:      insert.UserID,
		FullName:    insert.FullName,
		BirthDate:   insert.BirthDate,
		Residence:   insert.Residence,
		Spouse:      insert.Spouse,
		Bio:         insert.Bio,
		Ambitions:   insert.Ambitions,
		PrivateData: insert.PrivateData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextPersonalInfoID++
	s.personalInfos[info.ID] = info
	return &info, nil
}

func (s *MemStorage) UpdatePersonalInfo(_ context.Context, id int, update models.PersonalInfoUpdate) (*models.PersonalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.personalInfos[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.FullName != nil {
		info.FullName = *update.FullName
	}
	if update.BirthDate != nil {
		info.BirthDate = *update.BirthDate
	}
	if update.Residence != nil {
		info.Residence = *update.Residence
	}
	if update.Spouse != nil {
		info.Spouse = *update.Spouse
	}
	if update.Bio != nil {
		info.Bio = *update.Bio
	}
	if update.Ambitions != nil {
		info.Ambitions = *update.Ambitions
	}
	if update.PrivateData != nil {
		info.PrivateData = update.PrivateData
	}
	info.UpdatedAt = time.Now()
	s.personalInfos[id] = info
	return &info, nil
}

func (s *MemStorage) GetJournalEntries(_ context.Context, userID int) ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.JournalEntry, 0)
	for _, entry := range s.journalEntries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	// Newest first; ties within clock resolution fall back to id order.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

func (s *MemStorage) GetJournalEntry(_ context.Context, id int) (*models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.journalEntries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

func (s *MemStorage) CreateJournalEntry(_ context.Context, insert models.InsertJournalEntry) (*models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry := models.JournalEntry{
		ID:        s.nextJournalEntryID,
		UserID:    insert.UserID,
		Title:     insert.Title,
		Content:   insert.Content,
		Mood:      insert.Mood,
		Tags:      insert.Tags,
		IsPrivate: insert.IsPrivate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextJournalEntryID++
	s.journalEntries[entry.ID] = entry
	return &entry, nil
}

func (s *MemStorage) UpdateJournalEntry(_ context.Context, id int, update models.JournalEntryUpdate) (*models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.journalEntries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.Title != nil {
		entry.Title = *update.Title
	}
	if update.Content != nil {
		entry.Content = *update.Content
	}
	if update.Mood != nil {
		entry.Mood = *update.Mood
	}
	if update.Tags != nil {
		entry.Tags = update.Tags
	}
	if update.IsPrivate != nil {
		entry.IsPrivate = *update.IsPrivate
	}
	entry.UpdatedAt = time.Now()
	s.journalEntries[id] = entry
	return &entry, nil
}

func (s *MemStorage) DeleteJournalEntry(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.journalEntries[id]; !ok {
		return false, nil
	}
	delete(s.journalEntries, id)
	return true, nil
}
