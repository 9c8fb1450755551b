package dto

// UserStatsResponse aggregates a single applicant's dashboard counts
type UserStatsResponse struct {
	TotalApplications int64 `json:"totalApplications"`
	Completed         int64 `json:"completed"`
	Processing        int64 `json:"processing"`
	Reviews           int64 `json:"reviews"`
}

// AdminStatsResponse aggregates platform-wide counts for the admin dashboard
type AdminStatsResponse struct {
	TotalScholarships int64 `json:"totalScholarships"`
	TotalReviews      int64 `json:"totalReviews"`
	Applications      int64 `json:"applications"`
	TotalApplicants   int64 `json:"totalApplicants"`
}

// PaymentIntentRequest carries the decimal price to charge
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentResponse returns the provider's client secret
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
