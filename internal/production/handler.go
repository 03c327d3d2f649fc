package production

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ceramiqa/quality-management/internal/auth"
	"github.com/ceramiqa/quality-management/internal/transport"
	"github.com/ceramiqa/quality-management/pkg/logger"
)

type ServiceAPI interface {
	ListLots() ([]*ProductionLot, error)
	CreateLot(dto CreateLotDTO, operatorID int64) (*ProductionLot, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.Service.ListLots()
	if err != nil {
		h.Logger.Error("ListLots: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list production lots")
		return
	}

	h.WriteJSON(w, http.StatusOK, lots)
}

func (h *Handler) CreateLot(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateLotDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateLot: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lot, err := h.Service.CreateLot(dto, user.ID)
	if err != nil {
		h.Logger.Error("CreateLot: service error", "error", err, "operator_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, lot)
}
