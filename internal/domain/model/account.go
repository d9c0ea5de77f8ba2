package model

import (
	"strconv"
	"time"
)

// パートナーのアカウント。ログインに使う。
type PartnerAccount struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         AccessRole `gorm:"type:varchar(20);not null"`
	FirstName    string     `gorm:"type:varchar(100)"`
	LastName     string     `gorm:"type:varchar(100)"`
	Country      string     `gorm:"type:varchar(100)"`
	PhoneNumber  string     `gorm:"type:varchar(30)"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToIdentity はセッションに入れるIdentityへ変換する。
func (a *PartnerAccount) ToIdentity() Identity {
	return Identity{
		ID:          strconv.FormatInt(a.ID, 10),
		Email:       a.Email,
		Role:        string(a.Role),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Country:     a.Country,
		PhoneNumber: a.PhoneNumber,
	}
}
