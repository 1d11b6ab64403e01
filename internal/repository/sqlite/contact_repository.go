package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

const createContactsTable = `
CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'new',
	read_at DATETIME NULL,
	replied_at DATETIME NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createContactsTable); err != nil {
		return fmt.Errorf("create contacts table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_contacts_created ON contacts (created_at DESC)`); err != nil {
		return fmt.Errorf("create contacts index: %w", err)
	}
	return nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if contact.Status == "" {
		contact.Status = domain.ContactStatusNew
	}

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO contacts (id, name, email, message, status, read_at, replied_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Message,
		string(contact.Status),
		nullableTime(contact.ReadAt),
		nullableTime(contact.RepliedAt),
		contact.CreatedAt,
		contact.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	contact.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE contacts
SET status = ?, read_at = ?, replied_at = ?, updated_at = ?
WHERE id = ?`,
		string(contact.Status),
		nullableTime(contact.ReadAt),
		nullableTime(contact.RepliedAt),
		contact.UpdatedAt,
		contact.ID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return requireRow(res)
}

func (r *ContactRepository) Get(ctx context.Context, id string) (*domain.Contact, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, message, status, read_at, replied_at, created_at, updated_at
FROM contacts
WHERE id = ?`,
		id,
	)
	return scanContact(row)
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, message, status, read_at, replied_at, created_at, updated_at
FROM contacts
ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func scanContact(row interface {
	Scan(dest ...any) error
}) (*domain.Contact, error) {
	var (
		contact   domain.Contact
		status    string
		readAt    sql.NullTime
		repliedAt sql.NullTime
	)
	if err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Message,
		&status,
		&readAt,
		&repliedAt,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	contact.Status = domain.ContactStatus(status)
	if readAt.Valid {
		t := readAt.Time
		contact.ReadAt = &t
	}
	if repliedAt.Valid {
		t := repliedAt.Time
		contact.RepliedAt = &t
	}
	return &contact, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
