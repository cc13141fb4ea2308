// Package db provides PostgreSQL persistence for campaigns and their
// generated ad variants.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbaxter/adforge/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateCampaign inserts a campaign record and returns its ID.
func (db *DB) CreateCampaign(ctx context.Context, c Campaign) (int64, error) {
	status := c.Status
	if status == "" {
		status = StatusDraft
	}

	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO campaigns (name, brand_name, competitor_name, zipcode, industry,
		                        audience_type, offer_type, goal, scheduled_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		c.Name, c.BrandName, c.CompetitorName, c.Zipcode, c.Industry,
		c.AudienceType, c.OfferType, c.Goal, c.ScheduledAt, status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create campaign: %w", err)
	}
	return id, nil
}

// CreateAdVariants stores the generated variants for a campaign. Hashtags
// are kept as a JSON array.
func (db *DB) CreateAdVariants(ctx context.Context, campaignID int64, ads []types.GeneratedVariant) error {
	batch := &pgx.Batch{}
	for _, ad := range ads {
		hashtags, err := json.Marshal(ad.Hashtags)
		if err != nil {
			return fmt.Errorf("failed to marshal hashtags: %w", err)
		}
		batch.Queue(
			`INSERT INTO ad_variants (campaign_id, headline, ad_text, hashtags, cta, quality_score)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			campaignID, ad.Headline, ad.Body, hashtags, ad.CTA, ad.QualityScore,
		)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()
	for range ads {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert ad variant: %w", err)
		}
	}
	return nil
}

// SaveCampaign creates a campaign from the request and stores its variants
// in one call. It satisfies the orchestrator's Store contract.
func (db *DB) SaveCampaign(ctx context.Context, req types.GenerateRequest, ads []types.GeneratedVariant) (int64, error) {
	campaign := Campaign{
		Name:           DefaultCampaignName(req.OurBrand, req.CompetitorName),
		BrandName:      req.OurBrand,
		CompetitorName: req.CompetitorName,
		Zipcode:        req.Zipcode,
		Industry:       req.Industry,
		AudienceType:   req.AudienceType,
		OfferType:      req.OfferType,
		Goal:           req.Goal,
		Status:         StatusDraft,
	}

	id, err := db.CreateCampaign(ctx, campaign)
	if err != nil {
		return 0, err
	}
	if err := db.CreateAdVariants(ctx, id, ads); err != nil {
		return 0, err
	}
	return id, nil
}

// GetCampaign retrieves a campaign by ID. A missing campaign returns nil.
func (db *DB) GetCampaign(ctx context.Context, id int64) (*Campaign, error) {
	var c Campaign
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, brand_name, competitor_name, zipcode, industry,
		        audience_type, offer_type, goal, status, scheduled_at, created_at
		 FROM campaigns WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.BrandName, &c.CompetitorName, &c.Zipcode, &c.Industry,
		&c.AudienceType, &c.OfferType, &c.Goal, &c.Status, &c.ScheduledAt, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return &c, nil
}

// ListCampaigns retrieves recent campaigns.
func (db *DB) ListCampaigns(ctx context.Context, limit int) ([]Campaign, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, brand_name, competitor_name, zipcode, industry,
		        audience_type, offer_type, goal, status, scheduled_at, created_at
		 FROM campaigns ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []Campaign
	for rows.Next() {
		var c Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.BrandName, &c.CompetitorName, &c.Zipcode, &c.Industry,
			&c.AudienceType, &c.OfferType, &c.Goal, &c.Status, &c.ScheduledAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// ListAdVariants retrieves the stored variants for a campaign.
func (db *DB) ListAdVariants(ctx context.Context, campaignID int64) ([]AdVariant, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, campaign_id, headline, ad_text, hashtags, cta, quality_score, created_at
		 FROM ad_variants WHERE campaign_id = $1 ORDER BY id`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ad variants: %w", err)
	}
	defer rows.Close()

	var variants []AdVariant
	for rows.Next() {
		var v AdVariant
		var hashtags []byte
		if err := rows.Scan(&v.ID, &v.CampaignID, &v.Headline, &v.AdText, &hashtags,
			&v.CTA, &v.QualityScore, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ad variant: %w", err)
		}
		if len(hashtags) > 0 {
			if err := json.Unmarshal(hashtags, &v.Hashtags); err != nil {
				return nil, fmt.Errorf("failed to decode hashtags: %w", err)
			}
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// DefaultCampaignName builds the campaign name used when the caller did not
// supply one.
func DefaultCampaignName(brand, competitor string) string {
	return fmt.Sprintf("%s vs %s", brand, competitor)
}
