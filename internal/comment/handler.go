package comment

import (
	"fmt"
	"net/http"

	"mediasocial/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	commentService CommentService
}

func NewHandler(commentService CommentService) *Handler {
	return &Handler{commentService: commentService}
}

type addCommentRequest struct {
	PostID      uint64 `json:"post_id"`
	CommentText string `json:"comment_text"`
}

type addReplyRequest struct {
	Message string `json:"message"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/media/{id:[0-9]+}/comments", h.ListByPost).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/comments", h.AddComment).Methods(http.MethodPost)
	authed.HandleFunc("/comments/{id:[0-9]+}/replies", h.AddReply).Methods(http.MethodPost)
	authed.HandleFunc("/comments/{id:[0-9]+}", h.UpdateComment).Methods(http.MethodPut)
	authed.HandleFunc("/comments/{id:[0-9]+}", h.DeleteComment).Methods(http.MethodDelete)
}

func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	threads, err := h.commentService.ListByPost(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, threads)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	var req addCommentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	if req.PostID == 0 {
		common.WriteError(w, &common.ValidationError{Field: "post_id", Reason: "is required"})
		return
	}

	if _, err := h.commentService.AddComment(r.Context(), actor, req.PostID, req.CommentText); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, common.MessageResponse{
		Message: fmt.Sprintf("Comment added to post_id: %d", req.PostID),
	})
}

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req addReplyRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	if _, err := h.commentService.AddReply(r.Context(), actor, id, req.Message); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, common.MessageResponse{
		Message: fmt.Sprintf("Comment Reply added to comment_id: %d", id),
	})
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req addCommentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.commentService.UpdateComment(r.Context(), actor, id, req.CommentText); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Comment updated"})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), actor, id); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.MessageResponse{Message: "Comment deleted"})
}
