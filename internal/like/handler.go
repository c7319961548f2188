package like

import (
	"net/http"

	"mediasocial/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	likeService LikeService
}

func NewHandler(likeService LikeService) *Handler {
	return &Handler{likeService: likeService}
}

type countResponse struct {
	PostID uint64 `json:"post_id"`
	Likes  int64  `json:"likes"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/media/{id:[0-9]+}/likes", h.Count).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/media/{id:[0-9]+}/likes", h.Like).Methods(http.MethodPost)
	authed.HandleFunc("/media/{id:[0-9]+}/likes", h.Unlike).Methods(http.MethodDelete)
	authed.HandleFunc("/media/{id:[0-9]+}/likes/me", h.UserLike).Methods(http.MethodGet)
	authed.HandleFunc("/saves", h.SavedPosts).Methods(http.MethodGet)
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	outcome, err := h.likeService.Like(r.Context(), actor, id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteOutcome(w, outcome, "Like added", "Like already exists")
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.likeService.Unlike(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Like deleted"})
}

func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	n, err := h.likeService.Count(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, countResponse{PostID: id, Likes: n})
}

func (h *Handler) UserLike(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	save, err := h.likeService.UserLike(r.Context(), actor, id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, save)
}

func (h *Handler) SavedPosts(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	posts, err := h.likeService.SavedPosts(r.Context(), actor)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, posts)
}
