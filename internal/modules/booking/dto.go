package booking

type CreateBookingRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required" validate:"datetime=2006-01-02"`
	CheckOut   string `json:"check_out" binding:"required" validate:"datetime=2006-01-02"`
}

type QuoteRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required" validate:"datetime=2006-01-02"`
	CheckOut   string `json:"check_out" binding:"required" validate:"datetime=2006-01-02"`
}

type Quote struct {
	PropertyID    string  `json:"property_id"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
}
