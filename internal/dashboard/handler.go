package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/ceramiqa/quality-management/internal/transport"
	"github.com/ceramiqa/quality-management/pkg/logger"
)

type ServiceAPI interface {
	Metrics() (*Metrics, error)
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

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Service.Metrics()
	if err != nil {
		h.Logger.Error("GetMetrics: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute dashboard metrics")
		return
	}

	h.WriteJSON(w, http.StatusOK, metrics)
}
