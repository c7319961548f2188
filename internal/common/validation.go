package common

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	colorRegex    = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 20 {
		return &ValidationError{Field: "username", Reason: "must be between 3 and 20 characters"}
	}
	if !usernameRegex.MatchString(username) {
		return &ValidationError{Field: "username", Reason: "can only contain letters, numbers, and underscores"}
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 5 {
		return &ValidationError{Field: "password", Reason: "must be at least 5 characters long"}
	}
	if len(password) > 72 {
		return &ValidationError{Field: "password", Reason: "is too long"}
	}
	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "invalid email format"}
	}
	return nil
}

func ValidateColor(field, color string) error {
	if !colorRegex.MatchString(color) {
		return &ValidationError{Field: field, Reason: "must be a hex color"}
	}
	return nil
}

func ValidateText(field, text string, max int) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &ValidationError{Field: field, Reason: "cannot be empty"}
	}
	if len(text) > max {
		return &ValidationError{Field: field, Reason: "is too long"}
	}
	return nil
}
