package repository

import (
	"context"
	"errors"
	"fmt"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FirstMessage opens every new chat.
const FirstMessage = "Created this chat."

type ChatRepository interface {
	UserExists(ctx context.Context, userID uint64) (bool, error)
	CreateChat(ctx context.Context, chat *database.Chat) (common.Outcome, error)
	GetChat(ctx context.Context, chatID uint64) (*database.Chat, error)
	ListChats(ctx context.Context, userID uint64) ([]database.Chat, error)
	SaveMessage(ctx context.Context, msg *database.ChatMessage) error
	FetchHistory(ctx context.Context, chatID uint64) ([]database.ChatMessage, error)
	ResetChats(ctx context.Context) (int, error)
}

type chatRepo struct {
	db *gorm.DB
	tx database.TxManager
}

func NewChatRepository(db *gorm.DB, tx database.TxManager) ChatRepository {
	return &chatRepo{db: db, tx: tx}
}

func (r *chatRepo) UserExists(ctx context.Context, userID uint64) (bool, error) {
	return database.UserExists(r.db.WithContext(ctx), userID)
}

// CreateChat writes the chat header and its first message in one
// transaction. When the two users already share a chat nothing is written,
// chat is filled with the existing row and OutcomeAlreadyExists is returned.
func (r *chatRepo) CreateChat(ctx context.Context, chat *database.Chat) (common.Outcome, error) {
	if chat.SenderID == chat.ReceiverID {
		return common.OutcomeCreated, common.ErrSelfChat
	}
	chat.PairKey = database.PairKey(chat.SenderID, chat.ReceiverID)

	outcome := common.OutcomeCreated
	err := r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(chat)
		if result.Error != nil {
			return fmt.Errorf("failed to create chat: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			outcome = common.OutcomeAlreadyExists
			if err := tx.Where("pair_key = ?", chat.PairKey).First(chat).Error; err != nil {
				return fmt.Errorf("failed to load existing chat: %w", err)
			}
			return nil
		}

		first := &database.ChatMessage{
			ChatID:     chat.ChatID,
			SenderID:   chat.SenderID,
			ReceiverID: chat.ReceiverID,
			Message:    FirstMessage,
		}
		if err := tx.Create(first).Error; err != nil {
			return fmt.Errorf("failed to create first message: %w", err)
		}
		return nil
	})
	if err != nil {
		return common.OutcomeCreated, err
	}
	return outcome, nil
}

func (r *chatRepo) GetChat(ctx context.Context, chatID uint64) (*database.Chat, error) {
	var chat database.Chat
	err := r.db.WithContext(ctx).Where("chat_id = ?", chatID).First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("chat %d: %w", chatID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return &chat, nil
}

func (r *chatRepo) ListChats(ctx context.Context, userID uint64) ([]database.Chat, error) {
	var chats []database.Chat
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Order("chat_id DESC").
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, nil
}

func (r *chatRepo) SaveMessage(ctx context.Context, msg *database.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// FetchHistory returns the messages of a chat in the order they were sent.
func (r *chatRepo) FetchHistory(ctx context.Context, chatID uint64) ([]database.ChatMessage, error) {
	var messages []database.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Order("message_id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	return messages, nil
}
