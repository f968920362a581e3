package repositories

import (
	"database/sql"
)

// PlatformStats is the aggregate snapshot behind the admin dashboard.
type PlatformStats struct {
	TotalUsers           int64
	JobSeekers           int64
	Employers            int64
	ActiveUsers          int64
	TotalJobs            int64
	ActiveJobs           int64
	TotalApplications    int64
	ApplicationsByStatus map[string]int64
	TotalCompanies       int64
	PendingVerifications int64
}

// StatsRepository runs the read-only aggregate queries directly over
// database/sql; none of them need ORM mapping.
type StatsRepository interface {
	PlatformStats() (*PlatformStats, error)
}

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) PlatformStats() (*PlatformStats, error) {
	stats := &PlatformStats{
		ApplicationsByStatus: make(map[string]int64),
	}

	err := r.db.QueryRow(`
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE role = 'job_seeker'),
            COUNT(*) FILTER (WHERE role = 'employer'),
            COUNT(*) FILTER (WHERE is_active)
        FROM users
    `).Scan(&stats.TotalUsers, &stats.JobSeekers, &stats.Employers, &stats.ActiveUsers)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(`
        SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM jobs
    `).Scan(&stats.TotalJobs, &stats.ActiveJobs)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&stats.TotalApplications)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ApplicationsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(`SELECT COUNT(*) FROM companies`).Scan(&stats.TotalCompanies)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(`
        SELECT COUNT(*) FROM company_verifications WHERE status = 'pending'
    `).Scan(&stats.PendingVerifications)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
