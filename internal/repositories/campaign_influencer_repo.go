package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-crm/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const associationColumns = `
	id, campaign_id, influencer_id, status, rate, performance_rating,
	deliverables, performance, notes, created_at, updated_at`

type CampaignInfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignInfluencerRepo(pool *pgxpool.Pool) *CampaignInfluencerRepo {
	return &CampaignInfluencerRepo{pool: pool}
}

func scanAssociation(row interface{ Scan(dest ...any) error }) (*models.CampaignInfluencer, error) {
	var a models.CampaignInfluencer
	err := row.Scan(
		&a.ID, &a.CampaignID, &a.InfluencerID, &a.Status, &a.Rate, &a.PerformanceRating,
		&a.Deliverables, &a.Performance, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the association row. A duplicate (campaign_id, influencer_id)
// pair fails on the unique index; callers detect it with IsUniqueViolation.
func (r *CampaignInfluencerRepo) Create(ctx context.Context, a *models.CampaignInfluencer) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaign_influencers (campaign_id, influencer_id, status, rate, performance_rating, deliverables, performance, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.InfluencerID, a.Status, a.Rate, a.PerformanceRating, a.Deliverables, a.Performance, a.Notes,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *CampaignInfluencerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignInfluencer, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+associationColumns+` FROM campaign_influencers WHERE id = $1`, id)
	return scanAssociation(row)
}

func (r *CampaignInfluencerRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignInfluencer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+associationColumns+` FROM campaign_influencers WHERE campaign_id = $1 ORDER BY created_at ASC`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var associations []models.CampaignInfluencer
	for rows.Next() {
		a, err := scanAssociation(rows)
		if err != nil {
			return nil, err
		}
		associations = append(associations, *a)
	}
	return associations, nil
}

type AssociationPatch struct {
	Status            *string
	Rate              *float64
	PerformanceRating *int
	Deliverables      []models.Deliverable
	Performance       *models.Performance
	Notes             *string
}

func (r *CampaignInfluencerRepo) Update(ctx context.Context, id uuid.UUID, p AssociationPatch) (*models.CampaignInfluencer, error) {
	set := []string{}
	args := []any{}
	argIdx := 1

	add := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, v)
		argIdx++
	}

	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.Rate != nil {
		add("rate", *p.Rate)
	}
	if p.PerformanceRating != nil {
		add("performance_rating", *p.PerformanceRating)
	}
	if p.Deliverables != nil {
		add("deliverables", p.Deliverables)
	}
	if p.Performance != nil {
		add("performance", p.Performance)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	set = append(set, "updated_at = now()")
	query := fmt.Sprintf(
		`UPDATE campaign_influencers SET %s WHERE id = $%d RETURNING `+associationColumns,
		strings.Join(set, ", "), argIdx)
	args = append(args, id)

	return scanAssociation(r.pool.QueryRow(ctx, query, args...))
}

// DeleteByPair removes the association for (campaignID, influencerID).
// Returns false when no row matched.
func (r *CampaignInfluencerRepo) DeleteByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM campaign_influencers WHERE campaign_id = $1 AND influencer_id = $2`,
		campaignID, influencerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListForInfluencer is the influencer-side traversal: each campaign the
// influencer participates in, joined with the association detail.
func (r *CampaignInfluencerRepo) ListForInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.InfluencerCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`,
		       ci.id, ci.campaign_id, ci.influencer_id, ci.status, ci.rate, ci.performance_rating,
		       ci.deliverables, ci.performance, ci.notes, ci.created_at, ci.updated_at
		FROM campaign_influencers ci
		JOIN campaigns c ON c.id = ci.campaign_id
		WHERE ci.influencer_id = $1
		ORDER BY ci.created_at ASC
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.InfluencerCampaign
	for rows.Next() {
		var ic models.InfluencerCampaign
		c := &ic.Campaign
		a := &ic.Association
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
			&c.Budget, &c.Status, &c.BriefURL, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
			&c.TotalInfluencers, &c.TotalSpent, &c.AvgPerformance,
			&a.ID, &a.CampaignID, &a.InfluencerID, &a.Status, &a.Rate, &a.PerformanceRating,
			&a.Deliverables, &a.Performance, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ic)
	}
	return result, nil
}
