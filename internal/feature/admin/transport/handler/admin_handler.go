// Package handler はadminフィーチャーのHTTPハンドラーを提供します。
// すべてのエンドポイントは RequireRole("admin") の後段で呼ばれる前提です。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/feature/admin/transport/http/dto"
	"clinic_backend/internal/feature/admin/usecase"
	apptentity "clinic_backend/internal/feature/appointment/domain/entity"
	appointmentdto "clinic_backend/internal/feature/appointment/transport/http/dto"
	authentity "clinic_backend/internal/feature/auth/domain/entity"
	authdto "clinic_backend/internal/feature/auth/transport/http/dto"
	fbentity "clinic_backend/internal/feature/feedback/domain/entity"
	feedbackdto "clinic_backend/internal/feature/feedback/transport/http/dto"
	"clinic_backend/internal/platform/http/response"
)

// AdminUsecase は管理者向けユースケースのインターフェースです。
type AdminUsecase interface {
	Stats(ctx context.Context) (usecase.Stats, error)
	Users(ctx context.Context) ([]authentity.User, error)
	Appointments(ctx context.Context) ([]apptentity.Appointment, error)
	Feedback(ctx context.Context) ([]fbentity.Feedback, error)
}

// AdminHandler は管理者向けのHTTPリクエストを処理します。
type AdminHandler struct {
	uc AdminUsecase
}

// NewAdminHandler は新しい AdminHandler を作成します。
func NewAdminHandler(uc AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Stats は患者数・予約数・医師数を返します。
func (h *AdminHandler) Stats(c *gin.Context) {
	s, err := h.uc.Stats(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsRes{Patients: s.Patients, Appointments: s.Appointments, Doctors: s.Doctors})
}

// Users は全ユーザーをパスワード抜きで返します。
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.uc.Users(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, authdto.NewPublicUsers(users))
}

// Appointments は全予約を返します。
func (h *AdminHandler) Appointments(c *gin.Context) {
	list, err := h.uc.Appointments(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, appointmentdto.NewAppointmentItems(list))
}

// Feedback は全フィードバックを返します。
func (h *AdminHandler) Feedback(c *gin.Context) {
	list, err := h.uc.Feedback(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, feedbackdto.NewFeedbackItems(list))
}
