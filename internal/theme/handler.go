package theme

import (
	"fmt"
	"net/http"

	"mediasocial/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	themeService ThemeService
}

func NewHandler(themeService ThemeService) *Handler {
	return &Handler{themeService: themeService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/themes", h.List).Methods(http.MethodGet)
	r.HandleFunc("/themes/{id:[0-9]+}", h.GetByUser).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/themes", h.Set).Methods(http.MethodPost)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	themes, err := h.themeService.ListThemes(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, themes)
}

func (h *Handler) GetByUser(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	t, err := h.themeService.GetTheme(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	var in Input
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.themeService.SetTheme(r.Context(), actor, in); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{
		Message: fmt.Sprintf("Theme added/updated for user_id: %d", actor.UserID),
	})
}
