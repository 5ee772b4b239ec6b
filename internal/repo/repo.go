package repo

import (
	"github.com/mkarpovich/givehub/internal/pg"
	campaignrepo "github.com/mkarpovich/givehub/internal/repo/campaign-repo"
	donationrepo "github.com/mkarpovich/givehub/internal/repo/donation-repo"
	userrepo "github.com/mkarpovich/givehub/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	DonationRepo *donationrepo.Repository
	CampaignRepo *campaignrepo.Repository
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	donationRepo := donationrepo.New(conn, txManager)
	campaignRepo := campaignrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:     userRepo,
		DonationRepo: donationRepo,
		CampaignRepo: campaignRepo,
		TxManager:    txManager,
	}
}
