package media

import (
	"net/http"

	"mediasocial/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	postService PostService
}

func NewHandler(postService PostService) *Handler {
	return &Handler{postService: postService}
}

type postResponse struct {
	Message string    `json:"message"`
	Media   *PostView `json:"media"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/media", h.List).Methods(http.MethodGet)
	r.HandleFunc("/media/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/media/all/{id:[0-9]+}", h.ListByUser).Methods(http.MethodGet)
	r.HandleFunc("/media/highlight/{id:[0-9]+}", h.GetHighlight).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/media", h.Create).Methods(http.MethodPost)
	authed.HandleFunc("/media/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	authed.HandleFunc("/media/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/media/{id:[0-9]+}/highlight", h.Highlight).Methods(http.MethodPut)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	posts, err := h.postService.ListPostsByUser(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) GetHighlight(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	post, err := h.postService.GetHighlight(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	var req NewPost
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), actor, req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, postResponse{Message: "Media created", Media: post})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req PostChanges
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.postService.UpdatePost(r.Context(), actor, id, req); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Media updated"})
}

func (h *Handler) Highlight(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.postService.Highlight(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Media highlighted"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.postService.DeletePost(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Media deleted"})
}
