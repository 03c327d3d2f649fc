package energy

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ceramiqa/quality-management/internal/auth"
	"github.com/ceramiqa/quality-management/internal/transport"
	"github.com/ceramiqa/quality-management/pkg/logger"
)

type ServiceAPI interface {
	ListRecords() ([]*Record, error)
	CreateRecord(dto CreateRecordDTO, recordedBy int64) (*Record, error)
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

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListRecords()
	if err != nil {
		h.Logger.Error("ListRecords: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list energy records")
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateRecordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRecord: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.CreateRecord(dto, user.ID)
	if err != nil {
		h.Logger.Error("CreateRecord: service error", "error", err, "recorded_by", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}
