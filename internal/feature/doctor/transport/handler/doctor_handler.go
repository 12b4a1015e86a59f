package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/feature/doctor/domain/entity"
	"clinic_backend/internal/feature/doctor/transport/http/dto"
	"clinic_backend/internal/feature/doctor/usecase"
	"clinic_backend/internal/platform/http/response"
)

// DoctorUsecase は医師ディレクトリのユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DoctorUsecase interface {
	List(ctx context.Context, f entity.Filter) ([]entity.Doctor, error)
	Get(ctx context.Context, id string) (*entity.Doctor, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Doctor, error)
}

// DoctorHandler は医師ディレクトリに関するHTTPリクエストを処理します。
type DoctorHandler struct {
	uc DoctorUsecase
}

// NewDoctorHandler は新しい DoctorHandler を作成します。
func NewDoctorHandler(uc DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{uc: uc}
}

// List は医師の一覧を返します。specialty と search で絞り込めます。
// 一致がない場合も空配列を200で返します。
func (h *DoctorHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err)
		return
	}
	doctors, err := h.uc.List(c.Request.Context(), entity.Filter{Specialty: q.Specialty, Search: q.Search})
	if err != nil {
		response.Internal(c, err)
		return
	}
	out := make([]dto.DoctorItem, 0, len(doctors))
	for i := range doctors {
		out = append(out, dto.NewDoctorItem(&doctors[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDで医師を1件返します。
func (h *DoctorHandler) Get(c *gin.Context) {
	d, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDoctorItem(d))
}

// Create は管理者が医師を登録するAPIです。
func (h *DoctorHandler) Create(c *gin.Context) {
	var req dto.CreateDoctorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	d, err := h.uc.Create(c.Request.Context(), usecase.CreateInput{
		Name:         req.Name,
		Specialty:    req.Specialty,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
		Location:     req.Location,
		Availability: req.Availability,
		Fee:          req.Fee,
		Image:        req.Image,
	})
	if err != nil {
		response.Internal(c, err)
		return
	}
	slog.Info("doctor created", "doctor_id", d.ID, "specialty", d.Specialty)
	c.JSON(http.StatusCreated, dto.NewDoctorItem(d))
}
