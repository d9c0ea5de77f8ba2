package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"portal/internal/domain/model"
	"portal/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// ログインページのロールtokenが不正
	ErrInvalidRole = errors.New("invalid role")
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(_ context.Context, role string, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	// ロールtoken（technician/shop/distributor）
	if !model.ParseAccessRole(role).Valid() {
		return ErrInvalidRole
	}

	return nil
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
