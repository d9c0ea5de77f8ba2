package repository

import (
	"context"
	"errors"

	"portal/internal/domain/model"
	domainrepo "portal/internal/repository"

	"gorm.io/gorm"
)

type accountGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewAccountGormRepository(db *gorm.DB) domainrepo.AccountRepository {
	return &accountGormRepository{db: db}
}

// Create はアカウントを新規作成
func (r *accountGormRepository) Create(ctx context.Context, account *model.PartnerAccount) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return err
	}
	return nil
}

// emailでアカウントを1件取得
func (r *accountGormRepository) FindByEmail(ctx context.Context, email string) (*model.PartnerAccount, error) {
	var a model.PartnerAccount

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

// IDでアカウントを1件取得
func (r *accountGormRepository) FindByID(ctx context.Context, id int64) (*model.PartnerAccount, error) {
	var a model.PartnerAccount

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

// アカウントを更新。
func (r *accountGormRepository) Update(ctx context.Context, account *model.PartnerAccount) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return err
	}
	return nil
}
