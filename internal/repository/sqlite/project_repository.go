package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	tags TEXT NOT NULL DEFAULT '[]',
	link TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	featured INTEGER NOT NULL DEFAULT 0,
	under_construction INTEGER NOT NULL DEFAULT 0,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_projects_listing ON projects (featured DESC, sort_order ASC, created_at DESC)`); err != nil {
		return fmt.Errorf("create projects index: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	tags, err := encodeTags(project.Tags)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO projects (id, title, description, tags, link, image_url, featured, under_construction, sort_order, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID,
		project.Title,
		project.Description,
		tags,
		project.Link,
		project.ImageURL,
		project.Featured,
		project.UnderConstruction,
		project.Order,
		project.CreatedAt,
		project.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()

	tags, err := encodeTags(project.Tags)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE projects
SET title = ?, description = ?, tags = ?, link = ?, image_url = ?, featured = ?, under_construction = ?, sort_order = ?, updated_at = ?
WHERE id = ?`,
		project.Title,
		project.Description,
		tags,
		project.Link,
		project.ImageURL,
		project.Featured,
		project.UnderConstruction,
		project.Order,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return requireRow(res)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return requireRow(res)
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, description, tags, link, image_url, featured, under_construction, sort_order, created_at, updated_at
FROM projects
WHERE id = ?`,
		id,
	)
	return scanProject(row)
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, description, tags, link, image_url, featured, under_construction, sort_order, created_at, updated_at
FROM projects
ORDER BY featured DESC, sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

func scanProject(row interface {
	Scan(dest ...any) error
}) (*domain.Project, error) {
	var (
		project domain.Project
		tags    string
	)
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&tags,
		&project.Link,
		&project.ImageURL,
		&project.Featured,
		&project.UnderConstruction,
		&project.Order,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &project.Tags); err != nil {
		return nil, fmt.Errorf("decode project tags: %w", err)
	}
	return &project, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode project tags: %w", err)
	}
	return string(raw), nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
