package theme

import (
	"context"
	"errors"
	"fmt"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
)

// Input is a full theme. Color1 is required; nil fields are stored as NULL.
type Input struct {
	Color1 string  `json:"color1"`
	Color2 *string `json:"color2"`
	Color3 *string `json:"color3"`
	Color4 *string `json:"color4"`
	Font1  *string `json:"font1"`
	Font2  *string `json:"font2"`
}

type ThemeRepository interface {
	ReplaceTheme(ctx context.Context, userID uint64, in Input) error
	GetByUser(ctx context.Context, userID uint64) (*database.Theme, error)
	ListThemes(ctx context.Context) ([]database.Theme, error)
}

type themeRepository struct {
	db *gorm.DB
	tx database.TxManager
}

func NewThemeRepository(db *gorm.DB, tx database.TxManager) ThemeRepository {
	return &themeRepository{db: db, tx: tx}
}

// ReplaceTheme drops the user's current theme and inserts the new one in the
// same transaction, so a failed insert keeps the old theme.
func (r *themeRepository) ReplaceTheme(ctx context.Context, userID uint64, in Input) error {
	m := database.NewMutation().
		Set("user_id", userID).
		Set("color1", in.Color1)
	database.SetIfPresent(m, "color2", in.Color2)
	database.SetIfPresent(m, "color3", in.Color3)
	database.SetIfPresent(m, "color4", in.Color4)
	database.SetIfPresent(m, "font1", in.Font1)
	database.SetIfPresent(m, "font2", in.Font2)

	return r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&database.Theme{}).Error; err != nil {
			return fmt.Errorf("failed to delete theme: %w", err)
		}
		_, err := m.ExecInsert(tx, "themes")
		return err
	})
}

func (r *themeRepository) GetByUser(ctx context.Context, userID uint64) (*database.Theme, error) {
	var t database.Theme
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("theme of user %d: %w", userID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return &t, nil
}

func (r *themeRepository) ListThemes(ctx context.Context) ([]database.Theme, error) {
	var themes []database.Theme
	if err := r.db.WithContext(ctx).Order("theme_id").Find(&themes).Error; err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return themes, nil
}
