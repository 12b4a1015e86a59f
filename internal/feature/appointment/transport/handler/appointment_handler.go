// Package handler はappointmentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/feature/appointment/domain/entity"
	"clinic_backend/internal/feature/appointment/transport/http/dto"
	"clinic_backend/internal/feature/appointment/usecase"
	"clinic_backend/internal/platform/http/response"
	jwtmw "clinic_backend/internal/platform/jwt"
)

// AppointmentUsecase は予約操作のユースケースを定義します。
type AppointmentUsecase interface {
	Book(ctx context.Context, patientID string, in usecase.BookInput) (*entity.Appointment, error)
	ListMine(ctx context.Context, patientID string) ([]entity.Appointment, error)
	Cancel(ctx context.Context, actor usecase.Actor, id string) (*entity.Appointment, error)
}

// AppointmentHandler は予約に関するHTTPリクエストを処理します。
// すべてのエンドポイントはAuthRequiredの後段で呼ばれる前提です。
type AppointmentHandler struct {
	uc AppointmentUsecase
}

// NewAppointmentHandler は新しい AppointmentHandler を作成します。
func NewAppointmentHandler(uc AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Book は認証済みユーザーの予約を作成します。
// 医師またはユーザーが存在しない場合は404を返します。
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var req dto.BookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	a, err := h.uc.Book(c.Request.Context(), userID, usecase.BookInput{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
		Symptoms: req.Symptoms,
		Phone:    req.Phone,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("appointment booked", "appointment_id", a.ID, "doctor_id", a.DoctorID, "user_id", userID)
	c.JSON(http.StatusOK, dto.NewAppointmentItem(a))
}

// ListMine は認証済みユーザー自身の予約を新しい順に返します。
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	list, err := h.uc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentItems(list))
}

// Cancel は予約をキャンセルします。本人または管理者のみ実行できます。
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	actor := usecase.Actor{UserID: userID, Role: jwtmw.Role(c)}
	a, err := h.uc.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("appointment cancelled", "appointment_id", a.ID, "user_id", userID, "role", actor.Role)
	c.JSON(http.StatusOK, dto.NewAppointmentItem(a))
}

func (h *AppointmentHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound),
		errors.Is(err, usecase.ErrPatientNotFound),
		errors.Is(err, usecase.ErrAppointmentNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		slog.Warn("appointment access denied", "user_id", c.GetString(jwtmw.ContextUserID), "remote_addr", c.ClientIP())
		response.Error(c, http.StatusForbidden, "forbidden")
	default:
		response.Internal(c, err)
	}
}
