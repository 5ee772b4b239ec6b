package campaignservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarpovich/givehub/internal/domain"
)

//go:generate mockgen -source=campaignservice.go -destination=mock_campaignservice.go -package=campaignservice

type Repo interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type DonationRepo interface {
	FindCompletedByCampaignID(ctx context.Context, campaignID int) ([]domain.Donation, error)
}

const (
	ActiveStatus    string = "active"
	CompletedStatus string = "completed"
	CancelledStatus string = "cancelled"
	DraftStatus     string = "draft"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidTarget    = errors.New("target amount must be positive")
	ErrInvalidStatus    = errors.New("unknown campaign status")
)

type Service struct {
	campaignRepo Repo
	donationRepo DonationRepo
}

func New(campaignRepo Repo, donationRepo DonationRepo) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		donationRepo: donationRepo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

type CreateParams struct {
	Title        string
	Description  string
	TargetAmount decimal.Decimal
	EndDate      time.Time
	Draft        bool
}

// Create registers a new campaign. The aggregate fields always start at
// zero; nothing but payment verification is allowed to move them.
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Campaign, error) {
	if !params.TargetAmount.IsPositive() {
		return nil, ErrInvalidTarget
	}

	status := ActiveStatus
	if params.Draft {
		status = DraftStatus
	}

	campaign := &domain.Campaign{
		Title:        params.Title,
		Description:  params.Description,
		TargetAmount: params.TargetAmount,
		Status:       status,
		EndDate:      params.EndDate,
	}

	campaign, err := s.campaignRepo.Create(ctx, campaign)
	if err != nil {
		zap.L().Error("failed to create campaign", zap.Error(err))
		return nil, err
	}
	zap.L().Info("campaign created", zap.Int("campaign_id", campaign.ID), zap.String("title", campaign.Title))
	return campaign, nil
}

// UpdateStatus changes the campaign lifecycle status. It never touches the
// amount accumulators, so it cannot break the sum invariant.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) error {
	switch status {
	case ActiveStatus, CompletedStatus, CancelledStatus, DraftStatus:
	default:
		return ErrInvalidStatus
	}

	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	if err := s.campaignRepo.UpdateStatus(ctx, id, status); err != nil {
		zap.L().Error("failed to update campaign status", zap.Error(err))
		return err
	}
	zap.L().Info("campaign status updated", zap.Int("campaign_id", id), zap.String("status", status))
	return nil
}

func (s *Service) Donations(ctx context.Context, campaignID int) ([]domain.Donation, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	donations, err := s.donationRepo.FindCompletedByCampaignID(ctx, campaignID)
	if err != nil {
		zap.L().Error("failed to list campaign donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}
