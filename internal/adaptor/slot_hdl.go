package adaptor

import (
	"encoding/json"
	"net/http"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/dto/request"
	"charging-booking/internal/usecase"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// GetAvailability handles GET /api/slots?service_type=...&date=... (protected)
func (h *SlotHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	serviceType := entity.ServiceType(query.Get("service_type"))
	if !serviceType.IsValid() {
		utils.ResponseBadRequest(w, "Invalid service type", nil)
		return
	}

	slots, err := h.service.GetAvailability(r.Context(), serviceType, query.Get("date"))
	if err != nil {
		writeServiceError(w, h.log, err, "get slot availability")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// CreateSlot handles POST /api/admin/slots (admin)
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// UpdateSlot handles PUT /api/admin/slots/{slotID} (admin)
func (h *SlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	var req request.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.UpdateSlot(r.Context(), slotID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update slot")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}
