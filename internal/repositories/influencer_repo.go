package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-crm/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const influencerColumns = `
	id, handle, profile_link, followers, email, rate, categories,
	followers_age, followers_sex, engagement_rate, platform, brands_worked_with,
	notes, files, messages, created_at, updated_at`

type InfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepo(pool *pgxpool.Pool) *InfluencerRepo {
	return &InfluencerRepo{pool: pool}
}

func scanInfluencer(row interface{ Scan(dest ...any) error }) (*models.Influencer, error) {
	var i models.Influencer
	err := row.Scan(
		&i.ID, &i.Handle, &i.ProfileLink, &i.Followers, &i.Email, &i.Rate, &i.Categories,
		&i.FollowersAge, &i.FollowersSex, &i.EngagementRate, &i.Platform, &i.BrandsWorkedWith,
		&i.Notes, &i.Files, &i.Messages, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InfluencerRepo) Create(ctx context.Context, i *models.Influencer) error {
	if i.Categories == nil {
		i.Categories = []string{}
	}
	if i.Notes == nil {
		i.Notes = []models.InfluencerNote{}
	}
	if i.Files == nil {
		i.Files = []models.FileMeta{}
	}
	if i.Messages == nil {
		i.Messages = []models.Message{}
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO influencers (handle, profile_link, followers, email, rate, categories,
			followers_age, followers_sex, engagement_rate, platform, brands_worked_with,
			notes, files, messages)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`, i.Handle, i.ProfileLink, i.Followers, i.Email, i.Rate, i.Categories,
		i.FollowersAge, i.FollowersSex, i.EngagementRate, i.Platform, i.BrandsWorkedWith,
		i.Notes, i.Files, i.Messages,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func (r *InfluencerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+influencerColumns+` FROM influencers WHERE id = $1`, id)
	return scanInfluencer(row)
}

func (r *InfluencerRepo) ListAll(ctx context.Context) ([]models.Influencer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+influencerColumns+` FROM influencers ORDER BY handle ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var influencers []models.Influencer
	for rows.Next() {
		i, err := scanInfluencer(rows)
		if err != nil {
			return nil, err
		}
		influencers = append(influencers, *i)
	}
	return influencers, nil
}

// InfluencerPatch carries the fields of a partial update. Nil fields are
// left untouched.
type InfluencerPatch struct {
	Handle           *string
	ProfileLink      *string
	Followers        *int64
	Email            *string
	Rate             *float64
	Categories       []string
	FollowersAge     *string
	FollowersSex     *string
	EngagementRate   *float64
	Platform         *string
	BrandsWorkedWith []string
	Notes            []models.InfluencerNote
	Files            []models.FileMeta
	Messages         []models.Message
}

func (r *InfluencerRepo) Update(ctx context.Context, id uuid.UUID, p InfluencerPatch) (*models.Influencer, error) {
	set := []string{}
	args := []any{}
	argIdx := 1

	add := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, v)
		argIdx++
	}

	if p.Handle != nil {
		add("handle", *p.Handle)
	}
	if p.ProfileLink != nil {
		add("profile_link", *p.ProfileLink)
	}
	if p.Followers != nil {
		add("followers", *p.Followers)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Rate != nil {
		add("rate", *p.Rate)
	}
	if p.Categories != nil {
		add("categories", p.Categories)
	}
	if p.FollowersAge != nil {
		add("followers_age", *p.FollowersAge)
	}
	if p.FollowersSex != nil {
		add("followers_sex", *p.FollowersSex)
	}
	if p.EngagementRate != nil {
		add("engagement_rate", *p.EngagementRate)
	}
	if p.Platform != nil {
		add("platform", *p.Platform)
	}
	if p.BrandsWorkedWith != nil {
		add("brands_worked_with", p.BrandsWorkedWith)
	}
	if p.Notes != nil {
		add("notes", p.Notes)
	}
	if p.Files != nil {
		add("files", p.Files)
	}
	if p.Messages != nil {
		add("messages", p.Messages)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	set = append(set, "updated_at = now()")
	query := fmt.Sprintf(
		`UPDATE influencers SET %s WHERE id = $%d RETURNING `+influencerColumns,
		strings.Join(set, ", "), argIdx)
	args = append(args, id)

	return scanInfluencer(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes the influencer. Association rows go with it via
// ON DELETE CASCADE. Returns false when no row matched.
func (r *InfluencerRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM influencers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateFollowers is used by the worker's follower refresh.
func (r *InfluencerRepo) UpdateFollowers(ctx context.Context, id uuid.UUID, followers int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE influencers SET followers = $1, updated_at = now() WHERE id = $2`, followers, id)
	return err
}

// ListByPlatform returns influencers on a platform, for scraping refresh.
func (r *InfluencerRepo) ListByPlatform(ctx context.Context, platform string) ([]models.Influencer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+influencerColumns+` FROM influencers WHERE platform = $1`, platform)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var influencers []models.Influencer
	for rows.Next() {
		i, err := scanInfluencer(rows)
		if err != nil {
			return nil, err
		}
		influencers = append(influencers, *i)
	}
	return influencers, nil
}
