package user

import (
	"context"
	"errors"
	"fmt"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Customization is a profile customization. Activity and Level are always
// written; an empty value falls back to the default.
type Customization struct {
	Activity    string           `json:"user_activity"`
	Level       common.UserLevel `json:"level_name"`
	Description *string          `json:"description"`
	PfpURL      *string          `json:"pfp_url"`
}

const (
	defaultActivity = "Active"
	defaultLevel    = common.LevelUser
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *database.User) (common.Outcome, error)
	GetUserByID(ctx context.Context, userID uint64) (*database.User, error)
	GetUserByUsername(ctx context.Context, username string) (*database.User, error)
	ListUsers(ctx context.Context) ([]database.User, error)
	CustomizeUser(ctx context.Context, userID uint64, c Customization) error
	ModifyUser(ctx context.Context, userID uint64, m *database.Mutation) (*database.User, error)
	DeleteUser(ctx context.Context, userID uint64) (*cascade.Result, error)
}

type userRepository struct {
	db *gorm.DB
	tx database.TxManager
}

func NewUserRepository(db *gorm.DB, tx database.TxManager) UserRepository {
	return &userRepository{db: db, tx: tx}
}

// CreateUser inserts the user unless the username or email is taken.
func (r *userRepository) CreateUser(ctx context.Context, user *database.User) (common.Outcome, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(user)
	if result.Error != nil {
		return common.OutcomeCreated, fmt.Errorf("failed to create user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.OutcomeAlreadyExists, nil
	}
	return common.OutcomeCreated, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*database.User, error) {
	var user database.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	var user database.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]database.User, error) {
	var users []database.User
	if err := r.db.WithContext(ctx).Order("user_id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) CustomizeUser(ctx context.Context, userID uint64, c Customization) error {
	activity := c.Activity
	if activity == "" {
		activity = defaultActivity
	}
	level := c.Level
	if level == "" {
		level = defaultLevel
	}

	m := database.NewMutation().
		Set("user_activity", activity).
		Set("level_name", string(level))
	database.SetIfPresent(m, "description", c.Description)
	database.SetIfPresent(m, "pfp_url", c.PfpURL)

	return m.ExecUpdateExisting(r.db.WithContext(ctx), "users", "user_id = ?", userID)
}

// ModifyUser applies m to the user and returns the updated row. Both happen
// in one transaction so the returned row is the one just written.
func (r *userRepository) ModifyUser(ctx context.Context, userID uint64, m *database.Mutation) (*database.User, error) {
	var user database.User
	err := r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := m.ExecUpdateExisting(tx, "users", "user_id = ?", userID); err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user and everything that depends on it in one
// transaction. A missing user is common.ErrNotFound and nothing is removed.
func (r *userRepository) DeleteUser(ctx context.Context, userID uint64) (*cascade.Result, error) {
	var res *cascade.Result
	err := r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		res, err = cascade.UserPlan(userID).Run(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("delete user %d: %w", userID, err)
	}
	return res, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, common.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
