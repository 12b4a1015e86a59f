// Package adapters はappointmentフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinic_backend/internal/feature/appointment/domain/entity"
	"clinic_backend/internal/feature/appointment/usecase"
)

// コンパイル時にインターフェース実装を検証
var _ usecase.AppointmentRepository = (*appointmentRepository)(nil)

// appointmentRepository はGORMによるAppointmentRepositoryの実装です。
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository はappointmentRepositoryの新しいインスタンスを生成します。
func NewAppointmentRepository(db *gorm.DB) *appointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var a entity.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update は予約のステータスを保存します。予約内容そのものは変更しません。
func (r *appointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	res := r.db.WithContext(ctx).Model(a).Update("status", a.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAppointmentNotFound
	}
	return nil
}

// ListByPatient は患者の予約を作成日時の新しい順に返します。
func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	out := make([]entity.Appointment, 0)
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List は全予約を作成日時の新しい順に返します。
func (r *appointmentRepository) List(ctx context.Context) ([]entity.Appointment, error) {
	out := make([]entity.Appointment, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Count は予約の総数を返します。キャンセル済みも含みます。
func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
