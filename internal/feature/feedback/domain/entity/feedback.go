// Package entity はfeedbackフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnonymousName は名前が省略されたフィードバックの表示名です。
const AnonymousName = "Anonymous"

// Feedback は患者からの評価とコメントです。DoctorID は任意です。
type Feedback struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255;not null"`
	DoctorID  string `gorm:"size:36;index"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// BeforeCreate はIDが未設定の場合にUUIDを採番します。
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
