package dto

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
