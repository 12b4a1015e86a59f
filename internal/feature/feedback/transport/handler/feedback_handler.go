package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/feature/feedback/domain/entity"
	"clinic_backend/internal/feature/feedback/transport/http/dto"
	"clinic_backend/internal/feature/feedback/usecase"
	"clinic_backend/internal/platform/http/response"
)

// FeedbackUsecase はフィードバックのユースケースを定義します。
type FeedbackUsecase interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*entity.Feedback, error)
	List(ctx context.Context) ([]entity.Feedback, error)
}

// FeedbackHandler はフィードバックに関するHTTPリクエストを処理します。
type FeedbackHandler struct {
	uc FeedbackUsecase
}

// NewFeedbackHandler は新しい FeedbackHandler を作成します。
func NewFeedbackHandler(uc FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Submit はフィードバックを登録し201を返します。認証は不要です。
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	f, err := h.uc.Submit(c.Request.Context(), usecase.SubmitInput{
		Name:     req.Name,
		DoctorID: req.DoctorID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewFeedbackItem(f))
}

// List は全フィードバックを新しい順に返します。
func (h *FeedbackHandler) List(c *gin.Context) {
	list, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFeedbackItems(list))
}
