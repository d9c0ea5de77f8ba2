package repository

import (
	"context"
	"testing"

	domainrepo "portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVMemoryStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewKVMemoryStore()

	_, err := s.Get(ctx, "user")
	assert.ErrorIs(t, err, domainrepo.ErrNotFound)

	require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"1"}`)))

	v, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(v))

	// 無いキーのDeleteもエラーにしない
	require.NoError(t, s.Delete(ctx, "missing"))
	require.NoError(t, s.Delete(ctx, "user"))

	_, err = s.Get(ctx, "user")
	assert.ErrorIs(t, err, domainrepo.ErrNotFound)
}

// 接頭辞ビューはアカウントごとにキーが分かれる
func TestPrefixedStoreIsolatesNamespaces(t *testing.T) {
	ctx := context.Background()
	base := NewKVMemoryStore()

	a := domainrepo.Prefixed(base, domainrepo.AccountNamespace(1))
	b := domainrepo.Prefixed(base, domainrepo.AccountNamespace(2))

	require.NoError(t, a.Set(ctx, "cart", []byte("[1]")))

	_, err := b.Get(ctx, "cart")
	assert.ErrorIs(t, err, domainrepo.ErrNotFound)

	v, err := base.Get(ctx, "account:1:cart")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(v))
}
