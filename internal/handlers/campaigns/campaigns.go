package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mkarpovich/givehub/internal/domain"
	"github.com/mkarpovich/givehub/internal/dto"
	campaignservice "github.com/mkarpovich/givehub/internal/service/campaignservice"
	"github.com/mkarpovich/givehub/pkg/utils"
)

//go:generate mockgen -source=campaigns.go -destination=mock_campaigns.go -package=campaigns

type Service interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id int) (*domain.Campaign, error)
	Create(ctx context.Context, params campaignservice.CreateParams) (*domain.Campaign, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Donations(ctx context.Context, campaignID int) ([]domain.Donation, error)
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// List godoc
//
//	@Summary		List campaigns
//	@Description	Return all campaigns, active first.
//	@Tags			Campaigns
//	@Produce		json
//	@Success		200	{array}		dto.CampaignResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch campaigns")
		return
	}

	response := make([]dto.CampaignResponseDTO, len(campaigns))
	for i, c := range campaigns {
		response[i] = campaignDTO(&c)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a campaign
//	@Tags			Campaigns
//	@Produce		json
//	@Param			campaignID	path		int	true	"Campaign ID"
//	@Success		200			{object}	dto.CampaignResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid campaign id"
//	@Failure		404			{object}	utils.Response	"Campaign not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{campaignID} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "campaignID"))
	if err != nil || campaignID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	campaign, err := h.campaignService.Get(r.Context(), campaignID)
	if err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, campaignDTO(campaign))
}

// Donations godoc
//
//	@Summary		List completed donations of a campaign
//	@Tags			Campaigns
//	@Produce		json
//	@Param			campaignID	path		int	true	"Campaign ID"
//	@Success		200			{array}		dto.CampaignDonationDTO
//	@Failure		400			{object}	utils.Response	"Invalid campaign id"
//	@Failure		404			{object}	utils.Response	"Campaign not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{campaignID}/donations [get]
func (h *CampaignHandler) Donations(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "campaignID"))
	if err != nil || campaignID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	donations, err := h.campaignService.Donations(r.Context(), campaignID)
	if err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.CampaignDonationDTO, len(donations))
	for i, d := range donations {
		item := dto.CampaignDonationDTO{
			DonorName: d.DonorName,
			Amount:    d.Amount.InexactFloat64(),
		}
		if d.PaymentDate != nil {
			item.PaymentDate = d.PaymentDate.Format(time.RFC3339)
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Description	Admin-only. Aggregate fields start at zero and are owned by payment verification.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign payload"
//	@Success		201		{object}	dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end date")
		return
	}

	campaign, err := h.campaignService.Create(r.Context(), campaignservice.CreateParams{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		EndDate:      endDate,
		Draft:        req.Draft,
	})
	if err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrInvalidTarget):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, campaignDTO(campaign))
}

// UpdateStatus godoc
//
//	@Summary		Update campaign status
//	@Description	Admin-only lifecycle change; never touches the amount accumulators.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			campaignID	path		int								true	"Campaign ID"
//	@Param			request		body		dto.UpdateCampaignStatusRequestDTO	true	"New status"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		404			{object}	utils.Response	"Campaign not found"
//	@Failure		422			{object}	utils.Response	"Unknown status"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{campaignID}/status [patch]
func (h *CampaignHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "campaignID"))
	if err != nil || campaignID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	var req dto.UpdateCampaignStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.campaignService.UpdateStatus(r.Context(), campaignID, req.Status); err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, campaignservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Campaign status updated"})
}

func campaignDTO(c *domain.Campaign) dto.CampaignResponseDTO {
	return dto.CampaignResponseDTO{
		ID:                 c.ID,
		Title:              c.Title,
		Description:        c.Description,
		TargetAmount:       c.TargetAmount.InexactFloat64(),
		CurrentAmount:      c.CurrentAmount.InexactFloat64(),
		DonorsCount:        c.DonorsCount,
		ProgressPercentage: c.ProgressPercentage,
		Status:             c.Status,
		EndDate:            c.EndDate.Format(time.RFC3339),
	}
}
