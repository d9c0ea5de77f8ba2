package model

import "time"

// 永続KVストアの1レコード。user / token / cart をJSONで持つ。
type KVRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}
