package repository

import (
	"context"
	"fmt"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
)

const fixtureAdmin = "JohnTheAdmin"

type fixtureLine struct {
	fromAdmin bool
	text      string
}

type fixtureChat struct {
	username string
	lines    []fixtureLine
}

var fixtureChats = []fixtureChat{
	{
		username: "user1",
		lines: []fixtureLine{
			{fromAdmin: true, text: "Hello and welcome to the Global Chat! Please be respectful to others. Enjoy!"},
			{text: "Hello this is user1 and I am new here. Nice to meet you all!"},
		},
	},
	{
		username: "user2",
		lines: []fixtureLine{
			{text: "You all stink! I am the best user here!"},
			{fromAdmin: true, text: "Hi user2! Please be respectful to others. I am the admin here and have the ability to ban unruly users."},
		},
	},
}

// ResetChats deletes every chat and message and recreates the seed
// conversations between the admin account and the demo users. Demo users
// that do not exist are skipped. Without the admin account nothing is
// touched and common.ErrNotFound is returned. It returns the number of chats
// recreated.
func (r *chatRepo) ResetChats(ctx context.Context) (int, error) {
	created := 0
	err := r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		created = 0
		admin, ok, err := userIDByName(tx, fixtureAdmin)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("fixture admin %s: %w", fixtureAdmin, common.ErrNotFound)
		}

		others := make([]uint64, len(fixtureChats))
		for i, fc := range fixtureChats {
			if others[i], _, err = userIDByName(tx, fc.username); err != nil {
				return err
			}
		}

		if err := tx.Where("1 = 1").Delete(&database.ChatMessage{}).Error; err != nil {
			return fmt.Errorf("failed to clear chat messages: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&database.Chat{}).Error; err != nil {
			return fmt.Errorf("failed to clear chats: %w", err)
		}

		for i, fc := range fixtureChats {
			other := others[i]
			if other == 0 {
				continue
			}

			chat := &database.Chat{SenderID: admin, ReceiverID: other, PairKey: database.PairKey(admin, other)}
			if err := tx.Create(chat).Error; err != nil {
				return fmt.Errorf("failed to create chat with %s: %w", fc.username, err)
			}
			for _, line := range fc.lines {
				msg := &database.ChatMessage{ChatID: chat.ChatID, SenderID: other, ReceiverID: admin, Message: line.text}
				if line.fromAdmin {
					msg.SenderID, msg.ReceiverID = admin, other
				}
				if err := tx.Create(msg).Error; err != nil {
					return fmt.Errorf("failed to create message for %s: %w", fc.username, err)
				}
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func userIDByName(tx *gorm.DB, username string) (uint64, bool, error) {
	var users []database.User
	if err := tx.Select("user_id").Where("username = ?", username).Limit(1).Find(&users).Error; err != nil {
		return 0, false, fmt.Errorf("failed to find %s: %w", username, err)
	}
	if len(users) == 0 {
		return 0, false, nil
	}
	return users[0].UserID, true, nil
}
