// Package dto はdoctorフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "clinic_backend/internal/feature/doctor/domain/entity"

// ListQuery は GET /doctors のクエリパラメータです。
type ListQuery struct {
	Specialty string `form:"specialty"`
	Search    string `form:"search"`
}

// CreateDoctorReq は POST /doctors のリクエストボディです。
type CreateDoctorReq struct {
	Name         string  `json:"name" binding:"required,notblank,max=255"`
	Specialty    string  `json:"specialty" binding:"required,notblank,max=100"`
	Rating       float64 `json:"rating" binding:"min=0,max=5"`
	Reviews      int     `json:"reviews" binding:"min=0"`
	Location     string  `json:"location" binding:"max=255"`
	Availability string  `json:"availability" binding:"max=255"`
	Fee          int     `json:"fee" binding:"min=0"`
	Image        string  `json:"image" binding:"omitempty,url"`
}

// DoctorItem は医師のレスポンス表現です。
type DoctorItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Specialty    string  `json:"specialty"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Location     string  `json:"location"`
	Availability string  `json:"availability"`
	Fee          int     `json:"fee"`
	Image        string  `json:"image"`
}

// NewDoctorItem はエンティティをレスポンス表現に変換します。
func NewDoctorItem(d *entity.Doctor) DoctorItem {
	return DoctorItem{
		ID:           d.ID,
		Name:         d.Name,
		Specialty:    d.Specialty,
		Rating:       d.Rating,
		Reviews:      d.Reviews,
		Location:     d.Location,
		Availability: d.Availability,
		Fee:          d.Fee,
		Image:        d.Image,
	}
}
