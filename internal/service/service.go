package service

import (
	"github.com/mkarpovich/givehub/internal/handlers/auth"
	"github.com/mkarpovich/givehub/internal/handlers/campaigns"
	"github.com/mkarpovich/givehub/internal/handlers/donations"

	pkgauth "github.com/mkarpovich/givehub/pkg/auth"

	"github.com/mkarpovich/givehub/internal/repo"
	authservice "github.com/mkarpovich/givehub/internal/service/authservice"
	campaignservice "github.com/mkarpovich/givehub/internal/service/campaignservice"
	donationservice "github.com/mkarpovich/givehub/internal/service/donationservice"
)

type Services struct {
	AuthService     auth.Service
	DonationService donations.Service
	CampaignService campaigns.Service
}

func New(repo *repo.Repositories) *Services {
	campaignService := campaignservice.New(repo.CampaignRepo, repo.DonationRepo)
	donationService := donationservice.New(repo.DonationRepo, repo.CampaignRepo, repo.UserRepo, repo.TxManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		DonationService: donationService,
		CampaignService: campaignService,
	}
}
