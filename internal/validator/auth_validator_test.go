package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	// 正常系
	assert.NoError(t, v.ValidateLogin(ctx, "shop", "shop@example.com", "password123"))

	// 必須チェック
	assert.ErrorIs(t, v.ValidateLogin(ctx, "shop", "", "password123"), ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateLogin(ctx, "shop", "shop@example.com", ""), ErrInvalidInput)

	// email形式
	assert.ErrorIs(t, v.ValidateLogin(ctx, "shop", "not-an-email", "password123"), ErrInvalidInput)

	// ロールtoken
	assert.ErrorIs(t, v.ValidateLogin(ctx, "admin", "shop@example.com", "password123"), ErrInvalidRole)
	assert.ErrorIs(t, v.ValidateLogin(ctx, "", "shop@example.com", "password123"), ErrInvalidRole)
}
