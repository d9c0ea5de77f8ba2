package cart

import (
	"context"
	"encoding/json"

	"portal/internal/domain/model"
	"portal/internal/repository"
)

// 永続キー
const Key = "cart"

// Manager はカート明細を持ち、変更のたびに全量をストアへ書き戻す。
// 明細のQuantityは常に1以上。0以下になる変更は明細ごと消す。
type Manager struct {
	store repository.KVStore
	items []model.CartLineItem
}

// NewManager は起動時に1回ストアから復元する。
// キー無し・壊れたJSONは空のカートとして扱う。
func NewManager(ctx context.Context, store repository.KVStore) *Manager {
	m := &Manager{store: store}

	raw, err := store.Get(ctx, Key)
	if err != nil {
		return m
	}

	var items []model.CartLineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return m
	}

	m.items = items
	return m
}

// Items は明細のコピーを返す。
func (m *Manager) Items() []model.CartLineItem {
	cp := make([]model.CartLineItem, len(m.items))
	copy(cp, m.items)
	return cp
}

// Count は数量の合計。キャッシュせず毎回足す。
func (m *Manager) Count() int {
	total := 0
	for _, it := range m.items {
		total += it.Quantity
	}
	return total
}

// Add は商品とサイズをカートへ入れる。
// 同一(productId, size)があれば数量を加算する（重複キーは作らない）。
// サイズ価格が引けなければ0円で入れる（エラーにしない）。
func (m *Manager) Add(ctx context.Context, p model.Product, size string, qty int) (model.CartLineItem, error) {
	if qty < 1 {
		qty = 1
	}

	for i := range m.items {
		if m.items[i].SameKey(p.ID, size) {
			m.items[i].Quantity += qty
			return m.items[i], m.persist(ctx)
		}
	}

	item := model.CartLineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Size:      size,
		UnitPrice: p.PriceFor(size),
		Quantity:  qty,
		Image:     p.PrimaryImage(),
	}
	m.items = append(m.items, item)
	return item, m.persist(ctx)
}

// UpdateQuantity は数量をdeltaだけ動かす。
// 明細が無ければ何もしない。max(0, q+delta) が0なら明細を消す。
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, size string, delta int) error {
	for i := range m.items {
		if !m.items[i].SameKey(productID, size) {
			continue
		}

		next := m.items[i].Quantity + delta
		if next <= 0 {
			m.items = append(m.items[:i], m.items[i+1:]...)
		} else {
			m.items[i].Quantity = next
		}
		return m.persist(ctx)
	}
	return nil
}

// Remove は明細を無条件で消す。無ければ何もしない。
func (m *Manager) Remove(ctx context.Context, productID string, size string) error {
	for i := range m.items {
		if m.items[i].SameKey(productID, size) {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return m.persist(ctx)
		}
	}
	return nil
}

// Clear はカートを空にする。注文確定後に呼ぶ想定。
// ログアウトでは呼ばれない。
func (m *Manager) Clear(ctx context.Context) error {
	m.items = nil
	return m.persist(ctx)
}

// 全量をJSONで書き戻す（差分更新はしない）
func (m *Manager) persist(ctx context.Context) error {
	items := m.items
	if items == nil {
		items = []model.CartLineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, Key, raw)
}
