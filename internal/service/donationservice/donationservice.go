package donationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarpovich/givehub/internal/domain"
	"github.com/mkarpovich/givehub/internal/pg"
)

//go:generate mockgen -source=donationservice.go -destination=mock_donationservice.go -package=donationservice

type DonationRepo interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	FindByID(ctx context.Context, id int) (*domain.Donation, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Donation, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error)
	MarkCompleted(ctx context.Context, id int, paymentDate time.Time) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Donation, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.Donation, error)
}

type CampaignRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Campaign, error)
	UpdateAggregates(ctx context.Context, campaign *domain.Campaign) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	AddToTotalDonated(ctx context.Context, userID int, amount decimal.Decimal) error
}

const (
	// PendingStatus платёж ещё не подтверждён.
	PendingStatus string = "pending"
	// CompletedStatus платёж подтверждён, суммы кампании обновлены.
	CompletedStatus string = "completed"
)

const (
	MethodQR   string = "qr"
	MethodFPX  string = "fpx"
	MethodCard string = "card"
)

const AnonymousDonorName = "Anonymous"

var (
	ErrInvalidAmount        = errors.New("donation amount must be positive")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrDonationNotFound     = errors.New("donation not found")
	ErrAlreadyProcessed     = errors.New("donation already processed")
	ErrReceiptNotAvailable  = errors.New("receipt not available")
	ErrTransactionFailure   = errors.New("verification transaction failed")
)

type Service struct {
	donationRepo DonationRepo
	campaignRepo CampaignRepo
	userRepo     UserRepo
	txManager    pg.TXManager
}

func New(donationRepo DonationRepo, campaignRepo CampaignRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		txManager:    txManager,
	}
}

type IntakeParams struct {
	CampaignID    int
	Amount        decimal.Decimal
	PaymentMethod string
	UserID        int
	DonorName     string
	DonorEmail    string
	DonorPhone    string
	Anonymous     bool
}

// Intake records an attempted donation in pending status and returns it
// together with the target campaign for QR payload rendering.
func (s *Service) Intake(ctx context.Context, params IntakeParams) (*domain.Donation, *domain.Campaign, error) {
	if !params.Amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}

	method := params.PaymentMethod
	if method == "" {
		method = MethodQR
	}
	switch method {
	case MethodQR, MethodFPX:
	case MethodCard:
		zap.L().Info("card payment requested but not implemented")
		return nil, nil, ErrInvalidPaymentMethod
	default:
		return nil, nil, ErrInvalidPaymentMethod
	}

	campaign, err := s.campaignRepo.FindByID(ctx, params.CampaignID)
	if err != nil {
		zap.L().Error("can't find campaign for donation", zap.Error(err))
		return nil, nil, err
	}
	if campaign == nil {
		return nil, nil, ErrCampaignNotFound
	}

	donorName, donorEmail, donorPhone := params.DonorName, params.DonorEmail, params.DonorPhone
	if params.UserID > 0 && donorName == "" {
		user, err := s.userRepo.FindByID(ctx, params.UserID)
		if err != nil {
			zap.L().Error("can't load donor", zap.Error(err))
			return nil, nil, err
		}
		if user != nil {
			donorName, donorEmail, donorPhone = user.Name, user.Email, user.Phone
		}
	}
	if params.Anonymous {
		donorName = AnonymousDonorName
		donorEmail = ""
		donorPhone = ""
	}

	transactionID, err := newTransactionID()
	if err != nil {
		zap.L().Error("can't generate transaction id", zap.Error(err))
		return nil, nil, err
	}

	donation := &domain.Donation{
		CampaignID:    campaign.ID,
		UserID:        params.UserID,
		Amount:        params.Amount,
		TransactionID: transactionID,
		PaymentMethod: method,
		Status:        PendingStatus,
		DonorName:     donorName,
		DonorEmail:    donorEmail,
		DonorPhone:    donorPhone,
		IsAnonymous:   params.Anonymous,
		CreatedAt:     time.Now(),
	}

	donation, err = s.donationRepo.Create(ctx, donation)
	if err != nil {
		zap.L().Error("can't create donation", zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("donation created",
		zap.Int("donation_id", donation.ID),
		zap.String("transaction_id", donation.TransactionID),
		zap.Int("campaign_id", campaign.ID))
	return donation, campaign, nil
}

// Verify transitions a pending donation to completed and applies its amount
// to the campaign aggregates (and the donor total for registered donors)
// inside one transaction. Both rows are read with FOR UPDATE, so a second
// verification of the same donation observes ErrAlreadyProcessed and two
// verifications on the same campaign serialize their read-modify-write.
func (s *Service) Verify(ctx context.Context, donationID int) (*domain.Donation, *domain.Receipt, error) {
	var donation *domain.Donation
	var campaign *domain.Campaign

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		donation, err = s.donationRepo.FindByIDForUpdate(ctx, donationID)
		if err != nil {
			return err
		}
		if donation == nil {
			return ErrDonationNotFound
		}
		if donation.Status != PendingStatus {
			return ErrAlreadyProcessed
		}

		campaign, err = s.campaignRepo.FindByIDForUpdate(ctx, donation.CampaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return ErrCampaignNotFound
		}

		now := time.Now()
		if err := s.donationRepo.MarkCompleted(ctx, donation.ID, now); err != nil {
			return err
		}

		campaign.CurrentAmount = campaign.CurrentAmount.Add(donation.Amount)
		campaign.DonorsCount++
		// Progress is intentionally not clamped at 100: an over-funded
		// campaign keeps counting past its target.
		if campaign.TargetAmount.IsPositive() {
			ratio, _ := campaign.CurrentAmount.Div(campaign.TargetAmount).Float64()
			campaign.ProgressPercentage = ratio * 100
		}
		if err := s.campaignRepo.UpdateAggregates(ctx, campaign); err != nil {
			return err
		}

		if donation.UserID > 0 {
			if err := s.userRepo.AddToTotalDonated(ctx, donation.UserID, donation.Amount); err != nil {
				return err
			}
		}

		donation.Status = CompletedStatus
		donation.PaymentDate = &now
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDonationNotFound),
			errors.Is(err, ErrAlreadyProcessed),
			errors.Is(err, ErrCampaignNotFound):
			return nil, nil, err
		default:
			zap.L().Error("verification transaction rolled back", zap.Int("donation_id", donationID), zap.Error(err))
			return nil, nil, fmt.Errorf("%w: %v", ErrTransactionFailure, err)
		}
	}

	zap.L().Info("donation verified",
		zap.Int("donation_id", donation.ID),
		zap.String("transaction_id", donation.TransactionID),
		zap.Int("campaign_id", campaign.ID))
	return donation, buildReceipt(donation, campaign.Title), nil
}

// Receipt returns the receipt read model for a completed donation.
func (s *Service) Receipt(ctx context.Context, donationID int) (*domain.Receipt, error) {
	donation, err := s.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		zap.L().Error("can't find donation for receipt", zap.Error(err))
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	if donation.Status != CompletedStatus {
		return nil, ErrReceiptNotAvailable
	}

	campaign, err := s.campaignRepo.FindByID(ctx, donation.CampaignID)
	if err != nil {
		zap.L().Error("can't find campaign for receipt", zap.Error(err))
		return nil, err
	}
	title := ""
	if campaign != nil {
		title = campaign.Title
	}
	return buildReceipt(donation, title), nil
}

// Track resolves a donation by its transaction reference.
func (s *Service) Track(ctx context.Context, transactionID string) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		zap.L().Error("can't track donation", zap.Error(err))
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}

// History returns a registered donor's donations together with the donor
// record carrying the accumulated total.
func (s *Service) History(ctx context.Context, userID int) (*domain.User, []domain.Donation, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load donor for history", zap.Error(err))
		return nil, nil, err
	}
	donations, err := s.donationRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load donation history", zap.Error(err))
		return nil, nil, err
	}
	return user, donations, nil
}

// Transaction references look like TXN-20240131154501-4929357942, where the
// numeric suffix carries a Luhn check digit for cheap format validation.
func newTransactionID() (string, error) {
	suffix := goluhn.Generate(10)
	return fmt.Sprintf("TXN-%s-%s", time.Now().UTC().Format("20060102150405"), suffix), nil
}

func buildReceipt(donation *domain.Donation, campaignTitle string) *domain.Receipt {
	date := donation.CreatedAt
	if donation.PaymentDate != nil {
		date = *donation.PaymentDate
	}
	return &domain.Receipt{
		ReceiptID:     "RCP-" + uuid.NewString(),
		TransactionID: donation.TransactionID,
		Date:          date,
		DonorName:     donation.DonorName,
		DonorEmail:    donation.DonorEmail,
		Amount:        donation.Amount,
		PaymentMethod: donation.PaymentMethod,
		CampaignTitle: campaignTitle,
		Status:        donation.Status,
	}
}
