// Package entity はdoctorフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor は予約可能な医師を表します。
// JSONタグはキャッシュのシリアライズにも使用されます。
type Doctor struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255;not null;index" json:"name"`
	Specialty    string    `gorm:"size:100;not null;index" json:"specialty"`
	Rating       float64   `gorm:"not null;default:0" json:"rating"`
	Reviews      int       `gorm:"not null;default:0" json:"reviews"`
	Location     string    `gorm:"size:255" json:"location"`
	Availability string    `gorm:"size:255" json:"availability"`
	Fee          int       `gorm:"not null;default:0" json:"fee"`
	Image        string    `gorm:"size:512" json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BeforeCreate はIDが未設定の場合にUUIDを採番します。
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Filter は医師一覧の絞り込み条件です。
// Specialty は完全一致、Search は名前の大文字小文字を区別しない部分一致です。
type Filter struct {
	Specialty string
	Search    string
}
