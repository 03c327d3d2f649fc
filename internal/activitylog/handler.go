package activitylog

import (
	"log/slog"
	"net/http"

	"github.com/ceramiqa/quality-management/internal/transport"
	"github.com/ceramiqa/quality-management/pkg/logger"
)

type ServiceAPI interface {
	ListRecent() ([]*Entry, error)
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

func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.ListRecent()
	if err != nil {
		h.Logger.Error("ListRecent: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list activity log")
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}
