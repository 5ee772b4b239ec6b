package dto

type CampaignResponseDTO struct {
	ID                 int     `json:"id" example:"7"`
	Title              string  `json:"title" example:"Clean Water for Kampung Baru"`
	Description        string  `json:"description,omitempty"`
	TargetAmount       float64 `json:"target_amount" example:"1000"`
	CurrentAmount      float64 `json:"current_amount" example:"250"`
	DonorsCount        int     `json:"donors_count" example:"5"`
	ProgressPercentage float64 `json:"progress_percentage" example:"25"`
	Status             string  `json:"status" example:"active"`
	EndDate            string  `json:"end_date" example:"2024-06-30T00:00:00Z"`
}

type CreateCampaignRequestDTO struct {
	Title        string  `json:"title" example:"Clean Water for Kampung Baru"`
	Description  string  `json:"description,omitempty"`
	TargetAmount float64 `json:"target_amount" example:"1000"`
	EndDate      string  `json:"end_date" example:"2024-06-30T00:00:00Z"`
	Draft        bool    `json:"draft,omitempty" example:"false"`
}

type UpdateCampaignStatusRequestDTO struct {
	Status string `json:"status" example:"cancelled"`
}

type CampaignDonationDTO struct {
	DonorName   string  `json:"donor_name" example:"Anonymous"`
	Amount      float64 `json:"amount" example:"50"`
	PaymentDate string  `json:"payment_date" example:"2024-01-31T15:45:30+08:00"`
}
