package service

import (
	"context"
	"fmt"

	"mediasocial/internal/chat/repository"
	"mediasocial/internal/common"
	"mediasocial/internal/database"
	"mediasocial/internal/notif"
)

const maxMessageLength = 2000

// ChatService defines the interface exposed to the handler layer
type ChatService interface {
	StartChat(ctx context.Context, actor common.Actor, receiverID uint64, postID *uint64) (*database.Chat, common.Outcome, error)
	SendMessage(ctx context.Context, actor common.Actor, chatID uint64, text string) (*database.ChatMessage, error)
	MyChats(ctx context.Context, actor common.Actor) ([]database.Chat, error)
	GetMessageHistory(ctx context.Context, actor common.Actor, chatID uint64) ([]database.ChatMessage, error)
	ResetChats(ctx context.Context, actor common.Actor) (int, error)
}

type chatService struct {
	repo   repository.ChatRepository
	events notif.Publisher
}

// Constructor used in DI/wire
func NewChatService(r repository.ChatRepository, events notif.Publisher) ChatService {
	return &chatService{repo: r, events: events}
}

func (s *chatService) StartChat(ctx context.Context, actor common.Actor, receiverID uint64, postID *uint64) (*database.Chat, common.Outcome, error) {
	if actor.UserID == receiverID {
		return nil, common.OutcomeCreated, common.ErrSelfChat
	}
	exists, err := s.repo.UserExists(ctx, receiverID)
	if err != nil {
		return nil, common.OutcomeCreated, err
	}
	if !exists {
		return nil, common.OutcomeCreated, fmt.Errorf("user %d: %w", receiverID, common.ErrNotFound)
	}

	chat := &database.Chat{SenderID: actor.UserID, ReceiverID: receiverID, PostID: postID}
	outcome, err := s.repo.CreateChat(ctx, chat)
	if err != nil {
		return nil, outcome, err
	}
	if outcome == common.OutcomeCreated {
		s.events.Publish(notif.Event{UserID: receiverID, TriggerUserID: actor.UserID, Message: notif.MessageNewChat})
	}
	return chat, outcome, nil
}

// SendMessage appends a message to a chat the caller takes part in and
// notifies the other participant.
func (s *chatService) SendMessage(ctx context.Context, actor common.Actor, chatID uint64, text string) (*database.ChatMessage, error) {
	if err := common.ValidateText("message", text, maxMessageLength); err != nil {
		return nil, err
	}
	chat, err := s.participantChat(ctx, actor, chatID, false)
	if err != nil {
		return nil, err
	}

	receiver := chat.ReceiverID
	if actor.UserID == chat.ReceiverID {
		receiver = chat.SenderID
	}
	msg := &database.ChatMessage{ChatID: chat.ChatID, SenderID: actor.UserID, ReceiverID: receiver, Message: text}
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}

	s.events.Publish(notif.Event{UserID: receiver, TriggerUserID: actor.UserID, Message: notif.MessageNewChat})
	return msg, nil
}

func (s *chatService) MyChats(ctx context.Context, actor common.Actor) ([]database.Chat, error) {
	return s.repo.ListChats(ctx, actor.UserID)
}

// GetMessageHistory returns the messages of a chat, oldest first. Admins may
// read any chat.
func (s *chatService) GetMessageHistory(ctx context.Context, actor common.Actor, chatID uint64) ([]database.ChatMessage, error) {
	if _, err := s.participantChat(ctx, actor, chatID, actor.IsAdmin()); err != nil {
		return nil, err
	}
	return s.repo.FetchHistory(ctx, chatID)
}

func (s *chatService) ResetChats(ctx context.Context, actor common.Actor) (int, error) {
	if !actor.IsAdmin() {
		return 0, common.ErrForbidden
	}
	return s.repo.ResetChats(ctx)
}

// participantChat loads the chat and hides it from users outside it.
func (s *chatService) participantChat(ctx context.Context, actor common.Actor, chatID uint64, any bool) (*database.Chat, error) {
	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !any && chat.SenderID != actor.UserID && chat.ReceiverID != actor.UserID {
		return nil, fmt.Errorf("chat %d: %w", chatID, common.ErrNotFound)
	}
	return chat, nil
}
