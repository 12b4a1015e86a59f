// Package dto はappointmentフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"clinic_backend/internal/feature/appointment/domain/entity"
)

// BookReq は POST /appointments のリクエストボディです。
type BookReq struct {
	DoctorID string `json:"doctorId" binding:"required,notblank"`
	Date     string `json:"date" binding:"required,datefmt"`
	Time     string `json:"time" binding:"required,clock"`
	Symptoms string `json:"symptoms" binding:"required,notblank,max=2000"`
	Phone    string `json:"phone" binding:"required,phone"`
}

// AppointmentItem は予約のレスポンス表現です。
type AppointmentItem struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	PatientID   string    `json:"patientId"`
	DoctorName  string    `json:"doctorName"`
	Specialty   string    `json:"specialty"`
	PatientName string    `json:"patientName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Symptoms    string    `json:"symptoms"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewAppointmentItem はエンティティをレスポンス表現に変換します。
func NewAppointmentItem(a *entity.Appointment) AppointmentItem {
	return AppointmentItem{
		ID:          a.ID,
		DoctorID:    a.DoctorID,
		PatientID:   a.PatientID,
		DoctorName:  a.DoctorName,
		Specialty:   a.Specialty,
		PatientName: a.PatientName,
		Date:        a.Date,
		Time:        a.Time,
		Symptoms:    a.Symptoms,
		Phone:       a.Phone,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

// NewAppointmentItems はスライスを変換します。空でも[]を返します。
func NewAppointmentItems(list []entity.Appointment) []AppointmentItem {
	out := make([]AppointmentItem, 0, len(list))
	for i := range list {
		out = append(out, NewAppointmentItem(&list[i]))
	}
	return out
}
