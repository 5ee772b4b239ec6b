package qr

import (
	"encoding/base64"
	"encoding/json"

	"github.com/mkarpovich/givehub/internal/domain"
)

// payload carries everything the payment page needs to render the
// simulated QR code. The encoding is opaque to the rest of the system.
type payload struct {
	DonationID    int    `json:"donation_id"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	CampaignTitle string `json:"campaign_title"`
	PaymentMethod string `json:"payment_method"`
}

// Payload encodes the payment-intent artifact returned by donation intake.
func Payload(donation *domain.Donation, campaignTitle string) string {
	p := payload{
		DonationID:    donation.ID,
		TransactionID: donation.TransactionID,
		Amount:        donation.Amount.StringFixed(2),
		CampaignTitle: campaignTitle,
		PaymentMethod: donation.PaymentMethod,
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode parses a payload produced by Payload. The payment page uses it to
// show what the donor is about to confirm.
func Decode(encoded string) (donationID int, transactionID string, err error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return 0, "", err
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, "", err
	}
	return p.DonationID, p.TransactionID, nil
}
