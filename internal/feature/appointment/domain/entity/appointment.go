// Package entity はappointmentフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment は患者と医師の予約を表します。
// DoctorName / Specialty / PatientName は予約時点のスナップショットで、
// 元のレコードが変更されても更新されません。
type Appointment struct {
	ID          string `gorm:"primaryKey;size:36"`
	DoctorID    string `gorm:"size:36;not null;index"`
	PatientID   string `gorm:"size:36;not null;index"`
	DoctorName  string `gorm:"size:255;not null"`
	Specialty   string `gorm:"size:100"`
	PatientName string `gorm:"size:255;not null"`
	// Date はYYYY-MM-DD形式です。
	Date string `gorm:"size:10;not null"`
	// Time は24時間制のHH:MM形式です。
	Time      string `gorm:"size:5;not null"`
	Symptoms  string `gorm:"type:text"`
	Phone     string `gorm:"size:32"`
	Status    string `gorm:"size:16;not null;default:pending;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate はIDが未設定の場合にUUIDを採番します。
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// IsCancelled はキャンセル済みかどうかを返します。
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}
