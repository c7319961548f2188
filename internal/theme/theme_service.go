package theme

import (
	"context"
	"regexp"

	"mediasocial/internal/common"
	"mediasocial/internal/database"
)

var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const maxFontLength = 50

type ThemeService interface {
	SetTheme(ctx context.Context, actor common.Actor, in Input) error
	GetTheme(ctx context.Context, userID uint64) (*database.Theme, error)
	ListThemes(ctx context.Context) ([]database.Theme, error)
}

type themeService struct {
	repo ThemeRepository
}

func NewThemeService(repo ThemeRepository) ThemeService {
	return &themeService{repo: repo}
}

func (s *themeService) SetTheme(ctx context.Context, actor common.Actor, in Input) error {
	if err := validateColor("color1", &in.Color1); err != nil {
		return err
	}
	optional := []struct {
		field string
		value *string
		check func(string, *string) error
	}{
		{"color2", in.Color2, validateColor},
		{"color3", in.Color3, validateColor},
		{"color4", in.Color4, validateColor},
		{"font1", in.Font1, validateFont},
		{"font2", in.Font2, validateFont},
	}
	for _, o := range optional {
		if o.value == nil {
			continue
		}
		if err := o.check(o.field, o.value); err != nil {
			return err
		}
	}
	return s.repo.ReplaceTheme(ctx, actor.UserID, in)
}

func (s *themeService) GetTheme(ctx context.Context, userID uint64) (*database.Theme, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *themeService) ListThemes(ctx context.Context) ([]database.Theme, error) {
	return s.repo.ListThemes(ctx)
}

func validateFont(field string, f *string) error {
	return common.ValidateText(field, *f, maxFontLength)
}

func validateColor(field string, c *string) error {
	if !colorRegex.MatchString(*c) {
		return &common.ValidationError{Field: field, Reason: "must be a #rrggbb color"}
	}
	return nil
}
