package repository

import (
	"context"
	"errors"
	"fmt"
)

// キーが存在しないを統一
var ErrNotFound = errors.New("not found")

// プロセス再起動をまたぐ文字列キーの永続ストア。
// user / token / cart はこの上に保存する。
type KVStore interface {
	// キーが無ければ ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// キーが無くてもエラーにしない
	Delete(ctx context.Context, key string) error
}

// AccountNamespace はアカウントごとのキー接頭辞。
func AccountNamespace(accountID int64) string {
	return fmt.Sprintf("account:%d:", accountID)
}

// Prefixed は全キーに接頭辞を付けたビューを返す。
// アカウントごとにストアを分けるのに使う。
func Prefixed(base KVStore, prefix string) KVStore {
	return &prefixedStore{base: base, prefix: prefix}
}

type prefixedStore struct {
	base   KVStore
	prefix string
}

func (s *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.base.Get(ctx, s.prefix+key)
}

func (s *prefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.base.Set(ctx, s.prefix+key, value)
}

func (s *prefixedStore) Delete(ctx context.Context, key string) error {
	return s.base.Delete(ctx, s.prefix+key)
}
