package quality

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
	ListTests() ([]*QualityTest, error)
	CreateTest(dto TestDTO, operatorID int64) (*QualityTest, error)
	UpdateTest(id int64, dto TestDTO) (*QualityTest, error)
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

func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.Service.ListTests()
	if err != nil {
		h.Logger.Error("ListTests: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list quality tests")
		return
	}

	h.WriteJSON(w, http.StatusOK, tests)
}

func (h *Handler) CreateTest(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto TestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	test, err := h.Service.CreateTest(dto, user.ID)
	if err != nil {
		h.Logger.Error("CreateTest: service error", "error", err, "operator_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, test)
}

func (h *Handler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid test id")
		return
	}

	var dto TestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateTest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	test, err := h.Service.UpdateTest(id, dto)
	if err != nil {
		h.Logger.Error("UpdateTest: service error", "error", err, "test_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, test)
}
