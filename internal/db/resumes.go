package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Kariqs/jobland-api/internal/types"
)

// ResumeRecord is a stored structured resume with its metadata.
type ResumeRecord struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Title            string
	OriginalFileName *string
	MimeType         *string
	FileURL          *string
	Content          types.ResumeContent
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ResumeSummary is the listing view of a stored resume, without content.
type ResumeSummary struct {
	ID               uuid.UUID
	Title            string
	OriginalFileName *string
	CreatedAt        time.Time
}

// TitleExists reports whether a title is taken within a user's namespace.
func (db *DB) TitleExists(ctx context.Context, userID uuid.UUID, title string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM resumes WHERE user_id = $1 AND title = $2)`,
		userID, title,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check resume title: %w", err)
	}
	return exists, nil
}

// InsertResume stores a new resume. A race on (user_id, title) surfaces as
// ConflictError from the unique constraint.
func (db *DB) InsertResume(ctx context.Context, rec *ResumeRecord) (uuid.UUID, error) {
	contentJSON, err := json.Marshal(rec.Content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume content: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, original_file_name, mime_type, file_url, content)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		rec.UserID, rec.Title, rec.OriginalFileName, rec.MimeType, rec.FileURL, contentJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, asConflict(err)
	}
	return id, nil
}

// GetResume fetches one resume owned by the user. Returns nil when no such
// resume exists.
func (db *DB) GetResume(ctx context.Context, id, userID uuid.UUID) (*ResumeRecord, error) {
	return db.scanResume(db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, original_file_name, mime_type, file_url, content, created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
}

// GetResumeByTitle fetches one resume by its title within the user's
// namespace. Returns nil when no such resume exists.
func (db *DB) GetResumeByTitle(ctx context.Context, userID uuid.UUID, title string) (*ResumeRecord, error) {
	return db.scanResume(db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, original_file_name, mime_type, file_url, content, created_at, updated_at
		 FROM resumes WHERE user_id = $1 AND title = $2`,
		userID, title,
	))
}

func (db *DB) scanResume(row pgx.Row) (*ResumeRecord, error) {
	var rec ResumeRecord
	var contentJSON []byte
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.OriginalFileName,
		&rec.MimeType, &rec.FileURL, &contentJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if err := json.Unmarshal(contentJSON, &rec.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume content: %w", err)
	}
	rec.Content.EnsureDefaults()
	return &rec, nil
}

// ListResumes returns the user's resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, original_file_name, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	summaries := []ResumeSummary{}
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.OriginalFileName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// UpdateResume replaces a resume's title and content together. Returns
// false when the resume does not exist for the user.
func (db *DB) UpdateResume(ctx context.Context, id, userID uuid.UUID, title string, content *types.ResumeContent) (bool, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return false, fmt.Errorf("failed to marshal resume content: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET title = $1, content = $2, updated_at = NOW()
		 WHERE id = $3 AND user_id = $4`,
		title, contentJSON, id, userID,
	)
	if err != nil {
		return false, asConflict(err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteResume removes a resume owned by the user. Returns false when
// nothing was deleted.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
