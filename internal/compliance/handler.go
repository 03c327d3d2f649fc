package compliance

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
	ListDocuments() ([]*Document, error)
	CreateDocument(dto DocumentDTO, uploadedBy int64) (*Document, error)
	UpdateDocument(id int64, dto DocumentDTO) (*Document, error)
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

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.ListDocuments()
	if err != nil {
		h.Logger.Error("ListDocuments: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list compliance documents")
		return
	}

	h.WriteJSON(w, http.StatusOK, docs)
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto DocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateDocument: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.Service.CreateDocument(dto, user.ID)
	if err != nil {
		h.Logger.Error("CreateDocument: service error", "error", err, "uploaded_by", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	var dto DocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateDocument: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.Service.UpdateDocument(id, dto)
	if err != nil {
		h.Logger.Error("UpdateDocument: service error", "error", err, "document_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, doc)
}
