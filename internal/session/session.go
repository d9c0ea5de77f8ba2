package session

import (
	"context"
	"encoding/json"

	"portal/internal/domain/model"
	"portal/internal/repository"
)

// 永続キー
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Manager は認証済みIdentityと導出ロールを持つ。
// ロールはIdentityからだけ導出する（単体で書き換えない）。
type Manager struct {
	store    repository.KVStore
	identity *model.Identity
	role     model.AccessRole

	// カートパネルの開閉。UIの一時フラグで、永続しない。
	cartPanelOpen bool
}

// NewManager は起動時に1回ストアから復元する。
// キー無し・壊れたJSONは未認証として扱う（致命にしない）。
func NewManager(ctx context.Context, store repository.KVStore) *Manager {
	m := &Manager{store: store, role: model.RoleNone}

	raw, err := store.Get(ctx, KeyUser)
	if err != nil {
		return m
	}

	var id model.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return m
	}

	m.identity = &id
	m.role = id.AccessRole()
	return m
}

// Identity は現在のIdentity。未認証ならnil。
func (m *Manager) Identity() *model.Identity {
	return m.identity
}

// Role は現在のロール。Identityがnilなら必ずRoleNone。
func (m *Manager) Role() model.AccessRole {
	return m.role
}

// SetIdentity はIdentityを差し替える。
// 非nil: メモリに入れて永続、ロールを同期で導出する。
// nil: user/tokenを消して未認証に戻す。
func (m *Manager) SetIdentity(ctx context.Context, id *model.Identity) error {
	if id == nil {
		m.identity = nil
		m.role = model.RoleNone

		if err := m.store.Delete(ctx, KeyUser); err != nil {
			return err
		}
		return m.store.Delete(ctx, KeyToken)
	}

	cp := *id
	m.identity = &cp
	m.role = cp.AccessRole()

	raw, err := json.Marshal(&cp)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, KeyUser, raw)
}

// Logout は SetIdentity(nil) と同じ。カートには触らない。
func (m *Manager) Logout(ctx context.Context) error {
	return m.SetIdentity(ctx, nil)
}

// SetToken は認証トークンを永続する。ログイン側が書く。
func (m *Manager) SetToken(ctx context.Context, token string) error {
	return m.store.Set(ctx, KeyToken, []byte(token))
}

// Token は永続済みトークン。無ければ ("", false)。
func (m *Manager) Token(ctx context.Context) (string, bool) {
	raw, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func (m *Manager) CartPanelOpen() bool {
	return m.cartPanelOpen
}

func (m *Manager) SetCartPanelOpen(open bool) {
	m.cartPanelOpen = open
}
