package donationrepo

import (
	"context"
	"errors"
	"time"

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

const donationColumns = `id, campaign_id, user_id, amount, transaction_id, payment_method, status,
	       donor_name, donor_email, donor_phone, is_anonymous, created_at, payment_date`

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(
		&d.ID, &d.CampaignID, &d.UserID, &d.Amount, &d.TransactionID, &d.PaymentMethod, &d.Status,
		&d.DonorName, &d.DonorEmail, &d.DonorPhone, &d.IsAnonymous, &d.CreatedAt, &d.PaymentDate,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	query := `
        INSERT INTO donations (campaign_id, user_id, amount, transaction_id, payment_method, status,
                               donor_name, donor_email, donor_phone, is_anonymous, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			donation.CampaignID, donation.UserID, donation.Amount, donation.TransactionID,
			donation.PaymentMethod, donation.Status, donation.DonorName, donation.DonorEmail,
			donation.DonorPhone, donation.IsAnonymous, donation.CreatedAt,
		)
		if err := row.Scan(&donation.ID); err != nil {
			zap.L().Error("can't save donation", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE id = $1
    `
	donation, err := scanDonation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

// FindByIDForUpdate locks the donation row until the surrounding transaction
// ends, so concurrent verifications of the same donation serialize.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE id = $1
        FOR UPDATE
    `
	donation, err := scanDonation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation for update", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE transaction_id = $1
    `
	donation, err := scanDonation(r.db.QueryRow(ctx, query, transactionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation by transaction id", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) MarkCompleted(ctx context.Context, id int, paymentDate time.Time) error {
	query := `
        UPDATE donations
        SET status = 'completed', payment_date = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, paymentDate, id)
	if err != nil {
		zap.L().Error("can't mark donation completed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindCompletedByCampaignID(ctx context.Context, campaignID int) ([]domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE campaign_id = $1 AND status = 'completed'
        ORDER BY payment_date DESC
    `
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		zap.L().Error("can't get campaign donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDonations(rows)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDonations(rows)
}

// FindPending feeds the gateway watcher with donations awaiting payment
// confirmation, oldest first.
func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDonations(rows)
}

func collectDonations(rows pgx.Rows) ([]domain.Donation, error) {
	var donations []domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, *donation)
	}
	return donations, nil
}
