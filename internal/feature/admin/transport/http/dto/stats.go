// Package dto はadminフィーチャーのレスポンス表現を定義します。
package dto

// StatsRes は GET /admin/stats のレスポンスです。
type StatsRes struct {
	Patients     int64 `json:"patients"`
	Appointments int64 `json:"appointments"`
	Doctors      int64 `json:"doctors"`
}
