package dto

type ShippingRequest struct {
	Shipping interface{} `json:"shipping"`
}
