package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mkarpovich/givehub/docs"
	authhandlers "github.com/mkarpovich/givehub/internal/handlers/auth"
	campaignhandlers "github.com/mkarpovich/givehub/internal/handlers/campaigns"
	donationhandlers "github.com/mkarpovich/givehub/internal/handlers/donations"
	"github.com/mkarpovich/givehub/internal/service"
	"github.com/mkarpovich/givehub/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Intake(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Receipt(w http.ResponseWriter, r *http.Request)
	Track(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Donations(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	DonationHandler DonationHandler
	CampaignHandler CampaignHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		DonationHandler: donationhandlers.New(s.DonationService),
		CampaignHandler: campaignhandlers.New(s.CampaignService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/donations", h.DonationHandler.History)
			})
		})

		r.Route("/donations", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.OptionalAuthMiddleware)
				r.Post("/", h.DonationHandler.Intake)
			})
			r.Post("/verify", h.DonationHandler.Verify)
			r.Get("/{donationID}/receipt", h.DonationHandler.Receipt)
			r.Get("/track/{reference}", h.DonationHandler.Track)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.CampaignHandler.List)
			r.Get("/{campaignID}", h.CampaignHandler.Get)
			r.Get("/{campaignID}/donations", h.CampaignHandler.Donations)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
				r.Post("/", h.CampaignHandler.Create)
				r.Patch("/{campaignID}/status", h.CampaignHandler.UpdateStatus)
			})
		})
	})

	return r
}
