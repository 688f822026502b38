package dto

type PlaceBidRequest struct {
	Amount   float64 `json:"amount" validate:"required,gte=0"`
	Message  string  `json:"message" validate:"required"`
	Timeline string  `json:"timeline"`
}
