package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"portal/internal/domain/model"
	domainrepo "portal/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB接続文字列を環境変数から読む。未設定ならスキップ。
func kvTestDSN(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	return dsn
}

func Test_KVGormStore_SetGetDelete(t *testing.T) {
	dsn := kvTestDSN(t)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.KVRecord{}))

	store := NewKVGormStore(gdb)
	ctx := context.Background()
	key := "account:999999:cart"

	// 後片付け
	t.Cleanup(func() { _ = store.Delete(ctx, key) })

	// 未登録キー
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, domainrepo.ErrNotFound)

	// 書いて読む
	require.NoError(t, store.Set(ctx, key, []byte(`[{"productId":"fuel-system-cleaner"}]`)))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"fuel-system-cleaner"}]`, string(got))

	// 同じキーへのSetはupsert（行が増えない）
	require.NoError(t, store.Set(ctx, key, []byte(`[]`)))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	// 素のSQLでも1行のままであることを確認
	sqlDB, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	var n int
	require.NoError(t, sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM kv_records WHERE key = $1", key).Scan(&n))
	assert.Equal(t, 1, n)

	// 削除は0件でもエラーにしない
	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, domainrepo.ErrNotFound)
}
