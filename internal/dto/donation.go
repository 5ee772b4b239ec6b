package dto

type IntakeRequestDTO struct {
	CampaignID    int     `json:"campaign_id" example:"7"`
	Amount        float64 `json:"amount" example:"50"`
	PaymentMethod string  `json:"payment_method" example:"qr"`
	DonorName     string  `json:"donor_name,omitempty" example:"Amina Rahman"`
	DonorEmail    string  `json:"donor_email,omitempty" example:"amina@example.com"`
	DonorPhone    string  `json:"donor_phone,omitempty" example:"+60123456789"`
	Anonymous     bool    `json:"anonymous,omitempty" example:"false"`
	UserID        int     `json:"user_id,omitempty" example:"0"`
}

type IntakeResponseDTO struct {
	Success       bool    `json:"success" example:"true"`
	DonationID    int     `json:"donation_id" example:"42"`
	TransactionID string  `json:"transaction_id" example:"TXN-20240131154501-4929357942"`
	Amount        float64 `json:"amount" example:"50"`
	CampaignTitle string  `json:"campaign_title" example:"Clean Water for Kampung Baru"`
	DonorName     string  `json:"donor_name" example:"Amina Rahman"`
	QRPayload     string  `json:"qr_payload"`
	Message       string  `json:"message" example:"Donation recorded, awaiting payment"`
}

type VerifyRequestDTO struct {
	DonationID int `json:"donation_id" example:"42"`
}

type ReceiptDTO struct {
	ReceiptID     string  `json:"receipt_id" example:"RCP-9f3b0d0e-8f33-4f6e-b1a1-2c3de1a46c9f"`
	TransactionID string  `json:"transaction_id" example:"TXN-20240131154501-4929357942"`
	Date          string  `json:"date" example:"2024-01-31T15:45:30+08:00"`
	DonorName     string  `json:"donor_name" example:"Amina Rahman"`
	DonorEmail    string  `json:"donor_email" example:"amina@example.com"`
	Amount        float64 `json:"amount" example:"50"`
	PaymentMethod string  `json:"payment_method" example:"qr"`
	CampaignTitle string  `json:"campaign_title" example:"Clean Water for Kampung Baru"`
	Status        string  `json:"status" example:"completed"`
}

type VerifyResponseDTO struct {
	Success       bool       `json:"success" example:"true"`
	DonationID    int        `json:"donation_id" example:"42"`
	TransactionID string     `json:"transaction_id" example:"TXN-20240131154501-4929357942"`
	Amount        float64    `json:"amount" example:"50"`
	CampaignTitle string     `json:"campaign_title" example:"Clean Water for Kampung Baru"`
	DonorName     string     `json:"donor_name" example:"Amina Rahman"`
	ReceiptData   ReceiptDTO `json:"receipt_data"`
}

type ReceiptResponseDTO struct {
	Success     bool       `json:"success" example:"true"`
	ReceiptData ReceiptDTO `json:"receipt_data"`
}

type TrackResponseDTO struct {
	Success       bool    `json:"success" example:"true"`
	DonationID    int     `json:"donation_id" example:"42"`
	TransactionID string  `json:"transaction_id" example:"TXN-20240131154501-4929357942"`
	Status        string  `json:"status" example:"pending"`
	Amount        float64 `json:"amount" example:"50"`
	CreatedAt     string  `json:"created_at" example:"2024-01-31T15:40:00+08:00"`
}

type HistoryItemDTO struct {
	DonationID    int     `json:"donation_id" example:"42"`
	CampaignID    int     `json:"campaign_id" example:"7"`
	TransactionID string  `json:"transaction_id" example:"TXN-20240131154501-4929357942"`
	Amount        float64 `json:"amount" example:"50"`
	Status        string  `json:"status" example:"completed"`
	CreatedAt     string  `json:"created_at" example:"2024-01-31T15:40:00+08:00"`
}

type HistoryResponseDTO struct {
	Success      bool             `json:"success" example:"true"`
	TotalDonated float64          `json:"total_donated" example:"350"`
	Donations    []HistoryItemDTO `json:"donations"`
}
