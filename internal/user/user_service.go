package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/database"
)

// Modification sets whichever user fields are supplied.
type Modification struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	Description  *string `json:"description"`
	PfpURL       *string `json:"pfp_url"`
	UserActivity *string `json:"user_activity"`
	LevelName    *string `json:"level_name"`
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*database.User, common.Outcome, error)
	Login(ctx context.Context, username, password string) (*database.User, string, error)
	GetUser(ctx context.Context, userID uint64) (*database.User, error)
	ListUsers(ctx context.Context) ([]database.User, error)
	Customize(ctx context.Context, actor common.Actor, c Customization) error
	Modify(ctx context.Context, actor common.Actor, userID uint64, m Modification) (*database.User, error)
	Delete(ctx context.Context, actor common.Actor, userID uint64) (*cascade.Result, error)
}

type userService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, username, email, password string) (*database.User, common.Outcome, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, common.OutcomeCreated, err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, common.OutcomeCreated, err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, common.OutcomeCreated, err
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, common.OutcomeCreated, err
	}

	user := &database.User{
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Password:     hashed,
		LevelName:    string(common.LevelUser),
		UserActivity: defaultActivity,
	}
	outcome, err := s.userRepo.CreateUser(ctx, user)
	if err != nil || outcome == common.OutcomeAlreadyExists {
		return nil, outcome, err
	}
	return user, outcome, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*database.User, string, error) {
	if username == "" || password == "" {
		return nil, "", common.ErrUnauthorized
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, common.ErrNotFound) {
		return nil, "", common.ErrUnauthorized
	}
	if err != nil {
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.Password); err != nil {
		return nil, "", common.ErrUnauthorized
	}

	token, err := common.GenerateToken(user.UserID, user.Username, common.UserLevel(user.LevelName))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, userID uint64) (*database.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context) ([]database.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// Customize updates the caller's own profile. Only admins may grant the Admin level.
func (s *userService) Customize(ctx context.Context, actor common.Actor, c Customization) error {
	if c.Level != "" && !c.Level.IsValid() {
		return &common.ValidationError{Field: "level_name", Reason: "unknown level"}
	}
	if c.Level == common.LevelAdmin && !actor.IsAdmin() {
		return common.ErrForbidden
	}
	return s.userRepo.CustomizeUser(ctx, actor.UserID, c)
}

// Modify updates the supplied fields of a user. Users may only modify
// themselves; admins may modify anyone and change levels.
func (s *userService) Modify(ctx context.Context, actor common.Actor, userID uint64, m Modification) (*database.User, error) {
	if userID != actor.UserID && !actor.IsAdmin() {
		return nil, common.ErrForbidden
	}
	if m.LevelName != nil && !actor.IsAdmin() {
		return nil, common.ErrForbidden
	}

	mutation, err := s.modification(m)
	if err != nil {
		return nil, err
	}
	return s.userRepo.ModifyUser(ctx, userID, mutation)
}

// Delete removes a user with all dependent rows. Users may only delete
// themselves; admins may delete anyone.
func (s *userService) Delete(ctx context.Context, actor common.Actor, userID uint64) (*cascade.Result, error) {
	if userID != actor.UserID && !actor.IsAdmin() {
		return nil, common.ErrForbidden
	}
	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *userService) modification(m Modification) (*database.Mutation, error) {
	if m.Username != nil {
		if err := common.ValidateUsername(*m.Username); err != nil {
			return nil, err
		}
	}
	if m.Email != nil {
		if err := common.ValidateEmail(*m.Email); err != nil {
			return nil, err
		}
	}
	if m.LevelName != nil && !common.UserLevel(*m.LevelName).IsValid() {
		return nil, &common.ValidationError{Field: "level_name", Reason: "unknown level"}
	}

	var hashed *string
	if m.Password != nil {
		if err := common.ValidatePassword(*m.Password); err != nil {
			return nil, err
		}
		h, err := common.HashPassword(*m.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed = &h
	}

	mutation := database.NewMutation()
	database.SetIfPresent(mutation, "username", m.Username)
	database.SetIfPresent(mutation, "email", m.Email)
	database.SetIfPresent(mutation, "password", hashed)
	database.SetIfPresent(mutation, "description", m.Description)
	database.SetIfPresent(mutation, "pfp_url", m.PfpURL)
	database.SetIfPresent(mutation, "user_activity", m.UserActivity)
	database.SetIfPresent(mutation, "level_name", m.LevelName)

	if len(mutation.Assignments()) == 0 {
		return nil, common.ErrNoColumns
	}
	return mutation, nil
}
