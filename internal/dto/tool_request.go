package dto

type ToolRequest struct {
	Name              string  `json:"name"`
	Image             string  `json:"image"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	MinQuantity       int64   `json:"min_quantity"`
	AvailableQuantity int64   `json:"available_quantity"`
}
