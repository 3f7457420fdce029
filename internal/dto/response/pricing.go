package response

// PriceQuoteResponse is the server-computed price breakdown in minor units.
// Clients submit Total back as the booking price.
type PriceQuoteResponse struct {
	ServiceType        string  `json:"service_type"`
	BasePrice          int64   `json:"base_price"`
	CouponCode         *string `json:"coupon_code,omitempty"`
	DiscountPercentage int64   `json:"discount_percentage,omitempty"`
	Discount           int64   `json:"discount"`
	VAT                int64   `json:"vat"`
	Total              int64   `json:"total"`
}
