package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kariqs/jobland-api/internal/types"
)

// InsertSavedJob records a job application for the user.
func (db *DB) InsertSavedJob(ctx context.Context, job *types.SavedJob) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO saved_jobs (user_id, title, company, location_type, source, apply_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		job.UserID, job.Title, job.Company, job.LocationType, job.Source, job.ApplyURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job: %w", err)
	}
	return id, nil
}

// ListSavedJobs returns the user's saved applications, newest first.
func (db *DB) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]types.SavedJob, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, company, location_type, source, apply_url, created_at
		 FROM saved_jobs WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.SavedJob{}
	for rows.Next() {
		var j types.SavedJob
		if err := rows.Scan(&j.ID, &j.UserID, &j.Title, &j.Company,
			&j.LocationType, &j.Source, &j.ApplyURL, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
