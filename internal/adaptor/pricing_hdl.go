package adaptor

import (
	"net/http"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/usecase"
	"charging-booking/pkg/utils"

	"go.uber.org/zap"
)

type PricingHandler struct {
	service usecase.PricingService
	log     *zap.Logger
}

func NewPricingHandler(service usecase.PricingService, log *zap.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		log:     log.With(zap.String("handler", "pricing")),
	}
}

// GetQuote handles GET /api/price?service_type=...&coupon_code=... (protected)
func (h *PricingHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	riderID, ok := utils.GetRiderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	serviceType := entity.ServiceType(query.Get("service_type"))
	if !serviceType.IsValid() {
		utils.ResponseBadRequest(w, "Invalid service type", nil)
		return
	}

	var couponCode *string
	if code := query.Get("coupon_code"); code != "" {
		couponCode = &code
	}

	quote, err := h.service.Quote(r.Context(), serviceType, couponCode, riderID)
	if err != nil {
		writeServiceError(w, h.log, err, "get price quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}
