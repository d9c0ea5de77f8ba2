package repository

import (
	"context"

	"portal/internal/domain/model"
)

// 保存・取得を約束
type AccountRepository interface {
	// 新規アカウント作成
	Create(ctx context.Context, account *model.PartnerAccount) error
	// IDからアカウントを1件取得する。見つからなければ (nil, nil)
	FindByID(ctx context.Context, accountID int64) (*model.PartnerAccount, error)
	// メールからアカウントを1件取得する。見つからなければ (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.PartnerAccount, error)
	// アカウント情報の更新=>最後のログイン更新など
	Update(ctx context.Context, account *model.PartnerAccount) error
}
