package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/vincentkoh/portfolio-backend/internal/models"
)

// PostgresStorage is the durable backend, selected when POSTGRES_URI is set.
// It preserves the same ordering and upsert semantics as MemStorage.
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage connects to PostgreSQL and initializes tables.
func NewPostgresStorage(postgresURI string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", postgresURI)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	s := &PostgresStorage{db: db}
	if err = s.initTables(); err != nil {
		return nil, err
	}

	log.Println("✅ PostgreSQL tables initialized")
	return s, nil
}

// Close closes the database connection.
func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) initTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			access_code TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS personal_info (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			full_name TEXT NOT NULL,
			birth_date TEXT,
			residence TEXT,
			spouse TEXT,
			bio TEXT,
			ambitions TEXT,
			private_data JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS journal_entries (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			mood TEXT,
			tags TEXT[],
			is_private BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE INDEX IF NOT EXISTS idx_users_access_code ON users(access_code)`,
		`CREATE INDEX IF NOT EXISTS idx_personal_info_user_id ON personal_info(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_id ON journal_entries(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_created_at ON journal_entries(created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

const userColumns = "id, username, password, access_code, is_active, created_at"

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var accessCode sql.NullString
	err := row.Scan(&user.ID, &user.Username, &user.Password, &accessCode, &user.IsActive, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.AccessCode = accessCode.String
	return &user, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username)
	return scanUser(row)
}

func (s *PostgresStorage) GetUserByAccessCode(ctx context.Context, accessCode string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE access_code = $1 AND is_active ORDER BY id LIMIT 1", accessCode)
	return scanUser(row)
}

func (s *PostgresStorage) CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, access_code)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		insert.Username, insert.Password, nullString(insert.AccessCode))
	return scanUser(row)
}

func (s *PostgresStorage) UpdateUser(ctx context.Context, id int, update models.UserUpdate) (*models.User, error) {
	sets, args := []string{}, []interface{}{}
	if update.AccessCode != nil {
		args = append(args, nullString(*update.AccessCode))
		sets = append(sets, fmt.Sprintf("access_code = $%d", len(args)))
	}
	if update.IsActive != nil {
		args = append(args, *update.IsActive)
		sets = append(sets, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if len(sets) == 0 {
		return s.GetUser(ctx, id)
	}
	args = append(args, id)
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), userColumns), args...)
	return scanUser(row)
}

func (s *PostgresStorage) CreateContactMessage(ctx context.Context, insert models.InsertContactMessage) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created_at`,
		insert.Name, insert.Email, insert.Subject, insert.Message,
	).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *PostgresStorage) GetContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (s *PostgresStorage) GetContactMessage(ctx context.Context, id int) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages WHERE id = $1`, id,
	).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

const personalInfoColumns = "id, user_id, full_name, birth_date, residence, spouse, bio, ambitions, private_data, created_at, updated_at"

func scanPersonalInfo(row *sql.Row) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	var birthDate, residence, spouse, bio, ambitions sql.NullString
	var privateData []byte
	err := row.Scan(&info.ID, &info.UserID, &info.FullName, &birthDate, &residence,
		&spouse, &bio, &ambitions, &privateData, &info.CreatedAt, &info.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	info.BirthDate = birthDate.String
	info.Residence = residence.String
	info.Spouse = spouse.String
	info.Bio = bio.String
	info.Ambitions = ambitions.String
	if len(privateData) > 0 {
		if err := json.Unmarshal(privateData, &info.PrivateData); err != nil {
			return nil, err
		}
	}
	return &info, nil
}

func (s *PostgresStorage) GetPersonalInfo(ctx context.Context, userID int) (*models.PersonalInfo, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+personalInfoColumns+" FROM personal_info WHERE user_id = $1 ORDER BY id LIMIT 1", userID)
	return scanPersonalInfo(row)
}

func (s *PostgresStorage) CreatePersonalInfo(ctx context.Context, insert models.InsertPersonalInfo) (*models.PersonalInfo, error) {
	privateData, err := marshalPrivateData(insert.PrivateData)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO personal_info (user_id, full_name, birth_date, residence, spouse, bio, ambitions, private_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+personalInfoColumns,
		insert.UserID, insert.FullName, nullString(insert.BirthDate), nullString(insert.Residence),
		nullString(insert.Spouse), nullString(insert.Bio), nullString(insert.Ambitions), privateData)
	return scanPersonalInfo(row)
}

func (s *PostgresStorage) UpdatePersonalInfo(ctx context.Context, id int, update models.PersonalInfoUpdate) (*models.PersonalInfo, error) {
	sets, args := []string{}, []interface{}{}
	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.FullName != nil {
		addSet("full_name", *update.FullName)
	}
	if update.BirthDate != nil {
		addSet("birth_date", nullString(*update.BirthDate))
	}
	if update.Residence != nil {
		addSet("residence", nullString(*update.Residence))
	}
	if update.Spouse != nil {
		addSet("spouse", nullString(*update.Spouse))
	}
	if update.Bio != nil {
		addSet("bio", nullString(*update.Bio))
	}
	if update.Ambitions != nil {
		addSet("ambitions", nullString(*update.Ambitions))
	}
	if update.PrivateData != nil {
		privateData, err := marshalPrivateData(update.PrivateData)
		if err != nil {
			return nil, err
		}
		addSet("private_data", privateData)
	}
	addSet("updated_at", time.Now())
	args = append(args, id)
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		"UPDATE personal_info SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), personalInfoColumns), args...)
	return scanPersonalInfo(row)
}

const journalColumns = "id, user_id, title, content, mood, tags, is_private, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJournalEntry(row rowScanner) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	var mood sql.NullString
	var tags pq.StringArray
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &mood,
		&tags, &entry.IsPrivate, &entry.CreatedAt, &entry.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	entry.Mood = mood.String
	entry.Tags = []string(tags)
	return &entry, nil
}

func (s *PostgresStorage) GetJournalEntries(ctx context.Context, userID int) ([]models.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+journalColumns+" FROM journal_entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (s *PostgresStorage) GetJournalEntry(ctx context.Context, id int) (*models.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+journalColumns+" FROM journal_entries WHERE id = $1", id)
	return scanJournalEntry(row)
}

func (s *PostgresStorage) CreateJournalEntry(ctx context.Context, insert models.InsertJournalEntry) (*models.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO journal_entries (user_id, title, content, mood, tags, is_private)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+journalColumns,
		insert.UserID, insert.Title, insert.Content, nullString(insert.Mood),
		pq.Array(insert.Tags), insert.IsPrivate)
	return scanJournalEntry(row)
}

func (s *PostgresStorage) UpdateJournalEntry(ctx context.Context, id int, update models.JournalEntryUpdate) (*models.JournalEntry, error) {
	sets, args := []string{}, []interface{}{}
	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.Content != nil {
		addSet("content", *update.Content)
	}
	if update.Mood != nil {
		addSet("mood", nullString(*update.Mood))
	}
	if update.Tags != nil {
		addSet("tags", pq.Array(update.Tags))
	}
	if update.IsPrivate != nil {
		addSet("is_private", *update.IsPrivate)
	}
	addSet("updated_at", time.Now())
	args = append(args, id)
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		"UPDATE journal_entries SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), journalColumns), args...)
	return scanJournalEntry(row)
}

func (s *PostgresStorage) DeleteJournalEntry(ctx context.Context, id int) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM journal_entries WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func marshalPrivateData(data map[string]interface{}) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}
