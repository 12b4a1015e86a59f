// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// RolePatient は一般利用者（患者）のロールです。
	RolePatient = "patient"
	// RoleAdmin は管理者のロールです。
	RoleAdmin = "admin"
)

// User はシステムに登録されたユーザーを表します。
type User struct {
	// ID はUUID文字列の一意な識別子です。
	ID string `gorm:"primaryKey;size:36"`

	// Name は表示名です。
	Name string `gorm:"size:255;not null"`

	// Email はログインに使用するメールアドレスで、全ユーザーで一意です。
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password はbcryptでハッシュ化されたパスワードです。平文は保存しません。
	Password string `gorm:"size:255;not null"`

	// Phone は連絡先電話番号です。
	Phone string `gorm:"size:32"`

	// Role は patient または admin です。
	Role string `gorm:"size:16;not null;default:patient;index"`

	// JoinedAt は登録日時です。
	JoinedAt time.Time `gorm:"autoCreateTime"`

	UpdatedAt time.Time
}

// BeforeCreate はIDが未設定の場合にUUIDを採番します。
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin は管理者ロールかどうかを返します。
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
