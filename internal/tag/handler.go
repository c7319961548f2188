package tag

import (
	"fmt"
	"net/http"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"github.com/gorilla/mux"
)

type Handler struct {
	tagService TagService
}

func NewHandler(tagService TagService) *Handler {
	return &Handler{tagService: tagService}
}

type tagRequest struct {
	PostID  uint64 `json:"post_id"`
	TagName string `json:"tag_name"`
}

type tagResponse struct {
	Message string        `json:"message"`
	Tag     *database.Tag `json:"tag"`
}

// RegisterRoutes mounts the tag routes. /tags/media/{id} goes first so it is
// not read as a tag called "media".
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/tags", h.List).Methods(http.MethodGet)
	r.HandleFunc("/tags/media/{id:[0-9]+}", h.TagsOfPost).Methods(http.MethodGet)
	r.HandleFunc("/tags/{tag}", h.PostsByTag).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/tags", h.TagPost).Methods(http.MethodPost)
	authed.HandleFunc("/tags/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.ListTags(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, tags)
}

func (h *Handler) PostsByTag(w http.ResponseWriter, r *http.Request) {
	posts, err := h.tagService.PostsByTag(r.Context(), mux.Vars(r)["tag"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) TagsOfPost(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	tags, err := h.tagService.TagsOfPost(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, tags)
}

func (h *Handler) TagPost(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	var req tagRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	if req.PostID == 0 {
		common.WriteError(w, &common.ValidationError{Field: "post_id", Reason: "is required"})
		return
	}

	tag, outcome, err := h.tagService.TagPost(r.Context(), actor, req.PostID, req.TagName)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if outcome == common.OutcomeAlreadyExists {
		common.WriteJSON(w, http.StatusOK, tagResponse{Message: fmt.Sprintf("Tag already exists on post_id: %d", req.PostID), Tag: tag})
		return
	}
	common.WriteJSON(w, http.StatusCreated, tagResponse{Message: fmt.Sprintf("Tag added to post_id: %d", req.PostID), Tag: tag})
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
	if _, err := h.tagService.DeleteTag(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Tag deleted"})
}
