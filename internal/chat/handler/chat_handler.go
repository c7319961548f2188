// Package handler exposes chats over HTTP.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"mediasocial/internal/chat/service"
	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type startChatRequest struct {
	ReceiverID uint64  `json:"receiver_id"`
	PostID     *uint64 `json:"post_id"`
}

type startChatResponse struct {
	Message string         `json:"message"`
	Chat    *database.Chat `json:"chat"`
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type resetResponse struct {
	Message string `json:"message"`
	Chats   int    `json:"chats"`
}

// RegisterRoutes mounts every chat route behind the auth middleware.
func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	authed := r.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)
	authed.HandleFunc("/chats", h.StartChat).Methods(http.MethodPost)
	authed.HandleFunc("/chats", h.MyChats).Methods(http.MethodGet)
	authed.HandleFunc("/chats/reset", h.Reset).Methods(http.MethodPost)
	authed.HandleFunc("/chats/{id:[0-9]+}/messages", h.GetChatHistory).Methods(http.MethodGet)
	authed.HandleFunc("/chats/{id:[0-9]+}/messages", h.SendMessage).Methods(http.MethodPost)
}

func (h *ChatHandler) StartChat(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	var req startChatRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	if req.ReceiverID == 0 {
		common.WriteError(w, &common.ValidationError{Field: "receiver_id", Reason: "is required"})
		return
	}

	chat, outcome, err := h.chatService.StartChat(r.Context(), actor, req.ReceiverID, req.PostID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if outcome == common.OutcomeAlreadyExists {
		common.WriteJSON(w, http.StatusOK, startChatResponse{Message: "Chat already exists", Chat: chat})
		return
	}
	common.WriteJSON(w, http.StatusCreated, startChatResponse{
		Message: fmt.Sprintf("Chat conversation started by user_id: %d with user_id: %d", actor.UserID, req.ReceiverID),
		Chat:    chat,
	})
}

func (h *ChatHandler) MyChats(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	chats, err := h.chatService.MyChats(r.Context(), actor)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, chats)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	var req sendMessageRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	if _, err := h.chatService.SendMessage(r.Context(), actor, id, req.Message); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, common.MessageResponse{
		Message: fmt.Sprintf("Chat message added to chat_id: %d", id),
	})
}

// GetChatHistory supports optional offset and limit query parameters.
func (h *ChatHandler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	offset, limit, err := paging(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	messages, err := h.chatService.GetMessageHistory(r.Context(), actor, id)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if offset >= len(messages) {
		common.WriteJSON(w, http.StatusOK, []database.ChatMessage{})
		return
	}
	end := len(messages)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	common.WriteJSON(w, http.StatusOK, messages[offset:end])
}

func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	actor, ok := common.RequireActor(w, r)
	if !ok {
		return
	}
	n, err := h.chatService.ResetChats(r.Context(), actor)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, resetResponse{Message: "Chat messages reset", Chats: n})
}

func paging(r *http.Request) (offset, limit int, err error) {
	q := r.URL.Query()
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, &common.ValidationError{Field: "offset", Reason: "must be a non-negative integer"}
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			return 0, 0, &common.ValidationError{Field: "limit", Reason: "must be a non-negative integer"}
		}
	}
	return offset, limit, nil
}
