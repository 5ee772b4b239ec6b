package campaignrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mkarpovich/givehub/internal/domain"
	"github.com/mkarpovich/givehub/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const campaignColumns = `id, title, description, target_amount, current_amount, donors_count,
	       progress_percentage, status, end_date, created_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.TargetAmount, &c.CurrentAmount, &c.DonorsCount,
		&c.ProgressPercentage, &c.Status, &c.EndDate, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := `
        SELECT ` + campaignColumns + `
        FROM campaigns
        WHERE id = $1
    `
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

// FindByIDForUpdate reads the campaign with a row lock held for the rest of
// the surrounding transaction. Verification reads the aggregates through
// this method so the read-modify-write on current_amount cannot interleave
// with another verification of the same campaign.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Campaign, error) {
	query := `
        SELECT ` + campaignColumns + `
        FROM campaigns
        WHERE id = $1
        FOR UPDATE
    `
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find campaign for update", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Campaign, error) {
	query := `
        SELECT ` + campaignColumns + `
        FROM campaigns
        ORDER BY status = 'active' DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, nil
}

func (r *Repository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query := `
        INSERT INTO campaigns (title, description, target_amount, status, end_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			campaign.Title, campaign.Description, campaign.TargetAmount, campaign.Status, campaign.EndDate,
		)
		if err := row.Scan(&campaign.ID, &campaign.CreatedAt); err != nil {
			zap.L().Error("can't save campaign", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// UpdateAggregates writes the amount accumulators. Only the verification
// transaction may call it.
func (r *Repository) UpdateAggregates(ctx context.Context, campaign *domain.Campaign) error {
	query := `
        UPDATE campaigns
        SET current_amount = $1, donors_count = $2, progress_percentage = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query,
		campaign.CurrentAmount, campaign.DonorsCount, campaign.ProgressPercentage, campaign.ID,
	)
	if err != nil {
		zap.L().Error("can't update campaign aggregates", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE campaigns
        SET status = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, id)
		if err != nil {
			zap.L().Error("can't update campaign status", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}
