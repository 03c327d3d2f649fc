package campaign

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ceramiqa/quality-management/internal/auth"
	"github.com/ceramiqa/quality-management/internal/transport"
	"github.com/ceramiqa/quality-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListCampaigns() ([]*Campaign, error)
	CreateCampaign(dto CampaignDTO, createdBy int64) (*Campaign, error)
	UpdateCampaign(id int64, dto CampaignDTO) (*Campaign, error)
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

func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.ListCampaigns()
	if err != nil {
		h.Logger.Error("ListCampaigns: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list campaigns")
		return
	}

	h.WriteJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CampaignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCampaign: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.CreateCampaign(dto, user.ID)
	if err != nil {
		h.Logger.Error("CreateCampaign: service error", "error", err, "created_by", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var dto CampaignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateCampaign: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.UpdateCampaign(id, dto)
	if err != nil {
		h.Logger.Error("UpdateCampaign: service error", "error", err, "campaign_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}
