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

// campaignColumns includes the read-time aggregates derived from association
// rows. They are never written back; the association set is the single source
// of truth.
const campaignColumns = `
	c.id, c.user_id, c.name, c.description, c.start_date, c.end_date,
	c.budget, c.status, c.brief_url, c.notes, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM campaign_influencers ci WHERE ci.campaign_id = c.id),
	(SELECT COALESCE(SUM(ci.rate), 0) FROM campaign_influencers ci
		WHERE ci.campaign_id = c.id AND ci.status = 'paid'),
	(SELECT AVG(ci.performance_rating)::float8 FROM campaign_influencers ci
		WHERE ci.campaign_id = c.id AND ci.performance_rating IS NOT NULL)`

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func scanCampaign(row interface{ Scan(dest ...any) error }) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
		&c.Budget, &c.Status, &c.BriefURL, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		&c.TotalInfluencers, &c.TotalSpent, &c.AvgPerformance,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (user_id, name, description, start_date, end_date, budget, status, brief_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status, c.BriefURL, c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id)
	return scanCampaign(row)
}

func (r *CampaignRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns c WHERE c.user_id = $1 ORDER BY c.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, nil
}

type CampaignPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Status      *string
	BriefURL    *string
	Notes       *string
}

func (r *CampaignRepo) Update(ctx context.Context, id uuid.UUID, p CampaignPatch) (*models.Campaign, error) {
	set := []string{}
	args := []any{}
	argIdx := 1

	add := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, v)
		argIdx++
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.StartDate != nil {
		add("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		add("end_date", *p.EndDate)
	}
	if p.Budget != nil {
		add("budget", *p.Budget)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.BriefURL != nil {
		add("brief_url", *p.BriefURL)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	set = append(set, "updated_at = now()")
	query := fmt.Sprintf(
		`UPDATE campaigns c SET %s WHERE c.id = $%d RETURNING `+campaignColumns,
		strings.Join(set, ", "), argIdx)
	args = append(args, id)

	return scanCampaign(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes the campaign; its association rows cascade.
func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
