package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int             `db:"id"`
	Login        string          `db:"login"`
	PasswordHash string          `db:"password_hash"`
	Name         string          `db:"name"`
	Email        string          `db:"email"`
	Phone        string          `db:"phone"`
	Role         string          `db:"role"`
	TotalDonated decimal.Decimal `db:"total_donated"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Campaign struct {
	ID                 int             `db:"id"`
	Title              string          `db:"title"`
	Description        string          `db:"description"`
	TargetAmount       decimal.Decimal `db:"target_amount"`
	CurrentAmount      decimal.Decimal `db:"current_amount"`
	DonorsCount        int             `db:"donors_count"`
	ProgressPercentage float64         `db:"progress_percentage"`
	Status             string          `db:"status"`
	EndDate            time.Time       `db:"end_date"`
	CreatedAt          time.Time       `db:"created_at"`
}

type Donation struct {
	ID            int             `db:"id"`
	CampaignID    int             `db:"campaign_id"`
	UserID        int             `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	TransactionID string          `db:"transaction_id"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	DonorName     string          `db:"donor_name"`
	DonorEmail    string          `db:"donor_email"`
	DonorPhone    string          `db:"donor_phone"`
	IsAnonymous   bool            `db:"is_anonymous"`
	CreatedAt     time.Time       `db:"created_at"`
	PaymentDate   *time.Time      `db:"payment_date"`
}

// Receipt is the read model handed to the receipt page after a donation
// has been verified.
type Receipt struct {
	ReceiptID     string
	TransactionID string
	Date          time.Time
	DonorName     string
	DonorEmail    string
	Amount        decimal.Decimal
	PaymentMethod string
	CampaignTitle string
	Status        string
}
