package board

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/hrpulse/hrpulse/internal/transport"
)

type ServiceAPI interface {
	ListBoards() ([]*Board, error)
	GetBoard(id string) (*Board, error)
	CreateBoard(dto CreateBoardDTO) (*Board, error)
	UpdateBoard(id string, dto UpdateBoardDTO) (*Board, error)
	DeleteBoard(id string) error
	ReorderBoard(id string, dto ReorderDTO) (*Board, error)
	AddKPIToBoard(id, kpiID string) (*Board, error)
	RemoveKPIFromBoard(id, kpiID string) (*Board, error)
	ActivateBoard(id string) (*Board, error)
	ActiveBoard() (*Board, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.Service.ListBoards()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, boards)
}

func (h *Handler) GetActiveBoard(w http.ResponseWriter, r *http.Request) {
	active, err := h.Service.ActiveBoard()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if active == nil {
		// empty collection: no active board is a defined state
		h.WriteJSON(w, http.StatusOK, nil)
		return
	}
	h.WriteJSON(w, http.StatusOK, active)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	b, err := h.Service.GetBoard(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var dto CreateBoardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBoard: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.CreateBoard(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	var dto UpdateBoardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateBoard: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.UpdateBoard(chi.URLParam(r, "id"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteBoard(chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReorderBoard(w http.ResponseWriter, r *http.Request) {
	var dto ReorderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("ReorderBoard: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.ReorderBoard(chi.URLParam(r, "id"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) AddKPI(w http.ResponseWriter, r *http.Request) {
	b, err := h.Service.AddKPIToBoard(chi.URLParam(r, "id"), chi.URLParam(r, "kpiID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) RemoveKPI(w http.ResponseWriter, r *http.Request) {
	b, err := h.Service.RemoveKPIFromBoard(chi.URLParam(r, "id"), chi.URLParam(r, "kpiID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) ActivateBoard(w http.ResponseWriter, r *http.Request) {
	b, err := h.Service.ActivateBoard(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, b)
}
