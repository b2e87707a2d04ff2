package prefs

import (
	"encoding/json"
	"net/http"

	"github.com/hrpulse/hrpulse/internal/transport"
)

type ServiceAPI interface {
	GetPreferences() (DashboardPreferences, error)
	UpdatePreferences(dto UpdatePreferencesDTO) (DashboardPreferences, error)
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

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.GetPreferences()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var dto UpdatePreferencesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdatePreferences: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdatePreferences(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}
