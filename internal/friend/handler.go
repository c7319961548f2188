package friend

import (
	"net/http"

	"mediasocial/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	friendService FriendService
}

func NewHandler(friendService FriendService) *Handler {
	return &Handler{friendService: friendService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/friends/user/{id:[0-9]+}", h.ListFriendsOf).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/friends", h.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/friends/pending", h.ListPending).Methods(http.MethodGet)
	authed.HandleFunc("/friends/{id:[0-9]+}", h.SendRequest).Methods(http.MethodPost)
	authed.HandleFunc("/friends/{id:[0-9]+}/accept", h.Accept).Methods(http.MethodPut)
	authed.HandleFunc("/friends/{id:[0-9]+}", h.Remove).Methods(http.MethodDelete)
}

func (h *Handler) SendRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	outcome, err := h.friendService.SendRequest(r.Context(), actor, id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteOutcome(w, outcome, "Friendship added", "Friendship already exists")
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.friendService.Accept(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Friend request accepted"})
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.friendService.Remove(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Friendship removed"})
}

func (h *Handler) ListFriendsOf(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	h.writeFriends(w, r, id)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	h.writeFriends(w, r, actor.UserID)
}

func (h *Handler) writeFriends(w http.ResponseWriter, r *http.Request, userID uint64) {
	users, err := h.friendService.ListFriends(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	requests, err := h.friendService.ListPending(r.Context(), actor)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, requests)
}
