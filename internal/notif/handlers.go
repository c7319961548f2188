package notif

import (
	"net/http"

	"mediasocial/internal/common"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type sendRequest struct {
	UserID  uint64 `json:"user_id"`
	Message string `json:"message"`
}

// RegisterRoutes mounts the notification routes; all of them need a token.
func (h *NotificationHandler) RegisterRoutes(r *mux.Router) {
	s := r.PathPrefix("/notifications").Subrouter()
	s.Use(common.AuthMiddleware)
	s.HandleFunc("", h.List).Methods(http.MethodGet)
	s.HandleFunc("", h.Send).Methods(http.MethodPost)
	s.HandleFunc("/{id:[0-9]+}/viewed", h.MarkViewed).Methods(http.MethodPut)
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}

	notifications, err := h.service.List(r.Context(), actor)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.RequireActor(w, r); !ok {
		return
	}

	var req sendRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	if _, err := h.service.Send(r.Context(), req.UserID, req.Message); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, common.MessageResponse{Message: "Notification added"})
}

func (h *NotificationHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.service.MarkViewed(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Notification viewed updated"})
}
