package database

import (
	"errors"
	"fmt"

	"mediasocial/internal/common"

	"gorm.io/gorm"
)

// PostOwner returns the user id that owns postID.
func PostOwner(db *gorm.DB, postID uint64) (uint64, error) {
	var post Post
	err := db.Select("user_id").Where("post_id = ?", postID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("post %d: %w", postID, common.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get post: %w", err)
	}
	return post.UserID, nil
}

// UserExists reports whether a user row with userID is present.
func UserExists(db *gorm.DB, userID uint64) (bool, error) {
	var n int64
	if err := db.Model(&User{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return n > 0, nil
}
