package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/creator-crm/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reminderColumns = `
	id, user_id, title, description, expiration_date, type, priority,
	influencer_id, campaign_id, metadata, notified_at, created_at, updated_at`

type ReminderRepo struct {
	pool *pgxpool.Pool
}

func NewReminderRepo(pool *pgxpool.Pool) *ReminderRepo {
	return &ReminderRepo{pool: pool}
}

func scanReminder(row interface{ Scan(dest ...any) error }) (*models.Reminder, error) {
	var m models.Reminder
	err := row.Scan(
		&m.ID, &m.UserID, &m.Title, &m.Description, &m.ExpirationDate, &m.Type, &m.Priority,
		&m.InfluencerID, &m.CampaignID, &m.Metadata, &m.NotifiedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ReminderRepo) Create(ctx context.Context, m *models.Reminder) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO reminders (user_id, title, description, expiration_date, type, priority, influencer_id, campaign_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, m.UserID, m.Title, m.Description, m.ExpirationDate, m.Type, m.Priority, m.InfluencerID, m.CampaignID, m.Metadata,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *ReminderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reminder, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE id = $1`, id)
	return scanReminder(row)
}

type ReminderFilter struct {
	UserID   uuid.UUID
	Active   *bool
	Type     *string
	Priority *string
	Limit    int
	Offset   int
}

// List returns the user's reminders, expiration_date ascending. The active
// filter compares expiration_date against now(); activity is derived, not
// stored.
func (r *ReminderRepo) List(ctx context.Context, f ReminderFilter) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders`
	args := []any{f.UserID}
	argIdx := 2
	where := []string{"user_id = $1"}

	if f.Active != nil {
		if *f.Active {
			where = append(where, "expiration_date > now()")
		} else {
			where = append(where, "expiration_date <= now()")
		}
	}
	if f.Type != nil {
		where = append(where, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *f.Type)
		argIdx++
	}
	if f.Priority != nil {
		where = append(where, fmt.Sprintf("priority = $%d", argIdx))
		args = append(args, *f.Priority)
		argIdx++
	}

	query += " WHERE " + strings.Join(where, " AND ")

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY expiration_date ASC, id ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		m, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *m)
	}
	return reminders, nil
}

type ReminderPatch struct {
	Title          *string
	Description    *string
	ExpirationDate *time.Time
	Type           *string
	Priority       *string
	InfluencerID   *uuid.UUID
	CampaignID     *uuid.UUID
	Metadata       map[string]any
}

func (r *ReminderRepo) Update(ctx context.Context, id uuid.UUID, p ReminderPatch) (*models.Reminder, error) {
	set := []string{}
	args := []any{}
	argIdx := 1

	add := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, v)
		argIdx++
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ExpirationDate != nil {
		add("expiration_date", *p.ExpirationDate)
		// Re-arm notification when the expiry moves.
		set = append(set, "notified_at = NULL")
	}
	if p.Type != nil {
		add("type", *p.Type)
	}
	if p.Priority != nil {
		add("priority", *p.Priority)
	}
	if p.InfluencerID != nil {
		add("influencer_id", *p.InfluencerID)
	}
	if p.CampaignID != nil {
		add("campaign_id", *p.CampaignID)
	}
	if p.Metadata != nil {
		add("metadata", p.Metadata)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	set = append(set, "updated_at = now()")
	query := fmt.Sprintf(
		`UPDATE reminders SET %s WHERE id = $%d RETURNING `+reminderColumns,
		strings.Join(set, ", "), argIdx)
	args = append(args, id)

	return scanReminder(r.pool.QueryRow(ctx, query, args...))
}

func (r *ReminderRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetDueUnnotified returns reminders that expired at or before now and have
// not yet been announced by the worker.
func (r *ReminderRepo) GetDueUnnotified(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE expiration_date <= $1 AND notified_at IS NULL
		 ORDER BY expiration_date ASC`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		m, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *m)
	}
	return reminders, nil
}

func (r *ReminderRepo) MarkNotified(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE reminders SET notified_at = now() WHERE id = $1`, id)
	return err
}
