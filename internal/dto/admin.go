package dto

type AuditResponseDTO struct {
	UserID     int    `json:"userId" example:"1"`
	Stored     string `json:"stored" example:"60.00"`
	Replayed   string `json:"replayed" example:"60.00"`
	Entries    int    `json:"entries" example:"3"`
	Consistent bool   `json:"consistent" example:"true"`
}

type RegisterReferralRequestDTO struct {
	ReferrerID int `json:"referrerId" example:"1"`
	ReferredID int `json:"referredId" example:"2"`
}

type ReferralResponseDTO struct {
	ID         int    `json:"id" example:"3"`
	ReferrerID int    `json:"referrerId" example:"1"`
	ReferredID int    `json:"referredId" example:"2"`
	Status     string `json:"status" example:"registered"`
}

type RewardResponseDTO struct {
	Rewarded int `json:"rewarded" example:"1"`
}
