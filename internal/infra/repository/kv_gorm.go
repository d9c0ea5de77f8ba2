package repository

import (
	"context"
	"errors"

	"portal/internal/domain/model"
	domainrepo "portal/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvGormStore struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewして各managerに注入します。
func NewKVGormStore(db *gorm.DB) domainrepo.KVStore {
	return &kvGormStore{db: db}
}

// キーの値を1件取得
func (s *kvGormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec model.KVRecord

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

// upsertで全量を書き戻す
func (s *kvGormStore) Set(ctx context.Context, key string, value []byte) error {
	rec := model.KVRecord{Key: key, Value: value}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
}

// キーを削除。0件でもエラーにしない
func (s *kvGormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.KVRecord{}).Error
}
