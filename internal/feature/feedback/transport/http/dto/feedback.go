// Package dto はfeedbackフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"clinic_backend/internal/feature/feedback/domain/entity"
)

// SubmitFeedbackReq は POST /feedback のリクエストボディです。
type SubmitFeedbackReq struct {
	Name     string `json:"name" binding:"max=100"`
	DoctorID string `json:"doctorId"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required,notblank,max=2000"`
}

// FeedbackItem はフィードバックのレスポンス表現です。
type FeedbackItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DoctorID  string    `json:"doctorId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFeedbackItem はエンティティをレスポンス表現に変換します。
func NewFeedbackItem(f *entity.Feedback) FeedbackItem {
	return FeedbackItem{
		ID:        f.ID,
		Name:      f.Name,
		DoctorID:  f.DoctorID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

// NewFeedbackItems はスライスを変換します。空でも[]を返します。
func NewFeedbackItems(list []entity.Feedback) []FeedbackItem {
	out := make([]FeedbackItem, 0, len(list))
	for i := range list {
		out = append(out, NewFeedbackItem(&list[i]))
	}
	return out
}
