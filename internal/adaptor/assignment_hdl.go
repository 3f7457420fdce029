package adaptor

import (
	"encoding/json"
	"net/http"

	"charging-booking/internal/dto/request"
	"charging-booking/internal/usecase"
	"charging-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssignmentHandler struct {
	service usecase.AssignmentService
	log     *zap.Logger
}

func NewAssignmentHandler(service usecase.AssignmentService, log *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "assignment")),
	}
}

// AssignAgent handles PUT /api/admin/bookings/{bookingNo}/assign (admin)
func (h *AssignmentHandler) AssignAgent(w http.ResponseWriter, r *http.Request) {
	bookingNo := chi.URLParam(r, "bookingNo")

	var req request.AssignAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	assignment, err := h.service.AssignAgent(r.Context(), bookingNo, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "assign agent")
		return
	}

	utils.ResponseSuccess(w, "Agent assigned", assignment)
}
