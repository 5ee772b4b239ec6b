package donations

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
	donationservice "github.com/mkarpovich/givehub/internal/service/donationservice"
	"github.com/mkarpovich/givehub/pkg/auth"
	"github.com/mkarpovich/givehub/pkg/qr"
	"github.com/mkarpovich/givehub/pkg/utils"
	"github.com/mkarpovich/givehub/pkg/validate"
)

//go:generate mockgen -source=donations.go -destination=mock_donations.go -package=donations

type Service interface {
	Intake(ctx context.Context, params donationservice.IntakeParams) (*domain.Donation, *domain.Campaign, error)
	Verify(ctx context.Context, donationID int) (*domain.Donation, *domain.Receipt, error)
	Receipt(ctx context.Context, donationID int) (*domain.Receipt, error)
	Track(ctx context.Context, transactionID string) (*domain.Donation, error)
	History(ctx context.Context, userID int) (*domain.User, []domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Intake godoc
//
//	@Summary		Create a donation
//	@Description	Record a donation attempt in pending status and return the QR payment payload.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.IntakeRequestDTO	true	"Donation request payload"
//	@Success		201		{object}	dto.IntakeResponseDTO	"Donation created, awaiting payment"
//	@Failure		400		{object}	utils.Response			"Invalid request body or amount"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		422		{object}	utils.Response			"Unsupported payment method"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/donations [post]
func (h *DonationHandler) Intake(w http.ResponseWriter, r *http.Request) {
	var req dto.IntakeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := req.UserID
	if principal, ok := auth.PrincipalFromContext(r.Context()); ok {
		userID = principal.ID
	}

	donation, campaign, err := h.donationService.Intake(r.Context(), donationservice.IntakeParams{
		CampaignID:    req.CampaignID,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMethod: req.PaymentMethod,
		UserID:        userID,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		DonorPhone:    req.DonorPhone,
		Anonymous:     req.Anonymous,
	})
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, donationservice.ErrInvalidPaymentMethod):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, donationservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.IntakeResponseDTO{
		Success:       true,
		DonationID:    donation.ID,
		TransactionID: donation.TransactionID,
		Amount:        donation.Amount.InexactFloat64(),
		CampaignTitle: campaign.Title,
		DonorName:     donation.DonorName,
		QRPayload:     qr.Payload(donation, campaign.Title),
		Message:       "Donation recorded, awaiting payment",
	})
}

// Verify godoc
//
//	@Summary		Verify a donation payment
//	@Description	Transition a pending donation to completed and apply its amount to the campaign totals. Safe to retry: a repeated call reports the donation as already processed.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyRequestDTO	true	"Verification request payload"
//	@Success		200		{object}	dto.VerifyResponseDTO	"Donation verified"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		404		{object}	utils.Response			"Donation not found"
//	@Failure		409		{object}	utils.Response			"Donation already processed"
//	@Failure		503		{object}	utils.Response			"Verification transaction failed, retry"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/donations/verify [post]
func (h *DonationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DonationID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Donation id is required")
		return
	}

	donation, receipt, err := h.donationService.Verify(r.Context(), req.DonationID)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrDonationNotFound),
			errors.Is(err, donationservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, donationservice.ErrTransactionFailure):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Verification failed, please retry")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		Success:       true,
		DonationID:    donation.ID,
		TransactionID: donation.TransactionID,
		Amount:        donation.Amount.InexactFloat64(),
		CampaignTitle: receipt.CampaignTitle,
		DonorName:     donation.DonorName,
		ReceiptData:   receiptDTO(receipt),
	})
}

// Receipt godoc
//
//	@Summary		Get a donation receipt
//	@Description	Return receipt data for a completed donation.
//	@Tags			Donations
//	@Produce		json
//	@Param			donationID	path		int	true	"Donation ID"
//	@Success		200			{object}	dto.ReceiptResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid donation id"
//	@Failure		404			{object}	utils.Response	"Donation not found or not completed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/{donationID}/receipt [get]
func (h *DonationHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	donationID, err := strconv.Atoi(chi.URLParam(r, "donationID"))
	if err != nil || donationID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid donation id")
		return
	}

	receipt, err := h.donationService.Receipt(r.Context(), donationID)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrDonationNotFound),
			errors.Is(err, donationservice.ErrReceiptNotAvailable):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReceiptResponseDTO{
		Success:     true,
		ReceiptData: receiptDTO(receipt),
	})
}

// Track godoc
//
//	@Summary		Track a donation by transaction reference
//	@Description	Resolve a donation status by its TXN reference.
//	@Tags			Donations
//	@Produce		json
//	@Param			reference	path		string	true	"Transaction reference"
//	@Success		200			{object}	dto.TrackResponseDTO
//	@Failure		404			{object}	utils.Response	"Donation not found"
//	@Failure		422			{object}	utils.Response	"Malformed transaction reference"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/track/{reference} [get]
func (h *DonationHandler) Track(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	if !validate.IsReference(reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Malformed transaction reference")
		return
	}

	donation, err := h.donationService.Track(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TrackResponseDTO{
		Success:       true,
		DonationID:    donation.ID,
		TransactionID: donation.TransactionID,
		Status:        donation.Status,
		Amount:        donation.Amount.InexactFloat64(),
		CreatedAt:     donation.CreatedAt.Format(time.RFC3339),
	})
}

// History godoc
//
//	@Summary		Get donation history
//	@Description	Return the authenticated donor's donations and lifetime total.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.HistoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/donations [get]
func (h *DonationHandler) History(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, donations, err := h.donationService.History(r.Context(), principal.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}

	resp := dto.HistoryResponseDTO{
		Success:   true,
		Donations: make([]dto.HistoryItemDTO, 0, len(donations)),
	}
	if user != nil {
		resp.TotalDonated = user.TotalDonated.InexactFloat64()
	}
	for _, d := range donations {
		resp.Donations = append(resp.Donations, dto.HistoryItemDTO{
			DonationID:    d.ID,
			CampaignID:    d.CampaignID,
			TransactionID: d.TransactionID,
			Amount:        d.Amount.InexactFloat64(),
			Status:        d.Status,
			CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func receiptDTO(receipt *domain.Receipt) dto.ReceiptDTO {
	return dto.ReceiptDTO{
		ReceiptID:     receipt.ReceiptID,
		TransactionID: receipt.TransactionID,
		Date:          receipt.Date.Format(time.RFC3339),
		DonorName:     receipt.DonorName,
		DonorEmail:    receipt.DonorEmail,
		Amount:        receipt.Amount.InexactFloat64(),
		PaymentMethod: receipt.PaymentMethod,
		CampaignTitle: receipt.CampaignTitle,
		Status:        receipt.Status,
	}
}
