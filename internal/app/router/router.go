// Package router はHTTPルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	adminhandler "clinic_backend/internal/feature/admin/transport/handler"
	appointmenthandler "clinic_backend/internal/feature/appointment/transport/handler"
	authentity "clinic_backend/internal/feature/auth/domain/entity"
	authhandler "clinic_backend/internal/feature/auth/transport/handler"
	doctorhandler "clinic_backend/internal/feature/doctor/transport/handler"
	feedbackhandler "clinic_backend/internal/feature/feedback/transport/handler"
	"clinic_backend/internal/platform/http/middleware"
	jwtmw "clinic_backend/internal/platform/jwt"
	"clinic_backend/internal/platform/validation"
)

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Auth        *authhandler.AuthHandler
	Doctor      *doctorhandler.DoctorHandler
	Appointment *appointmenthandler.AppointmentHandler
	Feedback    *feedbackhandler.FeedbackHandler
	Admin       *adminhandler.AdminHandler
	Health      gin.HandlerFunc
}

// NewRouter はミドルウェアとルートを登録したgin.Engineを返します。
func NewRouter(h Handlers, verifier jwtmw.AccessVerifier, origins []string) *gin.Engine {
	validation.MustRegister()

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.CORS(origins))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	authGroup := r.Group("/auth")
	{
		// 新規ユーザー登録
		authGroup.POST("/register", h.Auth.Register)
		// ログイン（トークンペア発行）
		authGroup.POST("/login", h.Auth.Login)
		// リフレッシュトークンからアクセストークンを再発行
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.GET("/me", jwtmw.AuthRequired(verifier), h.Auth.Me)
	}

	r.GET("/doctors", h.Doctor.List)
	r.GET("/doctors/:id", h.Doctor.Get)
	r.GET("/feedback", h.Feedback.List)
	r.POST("/feedback", h.Feedback.Submit)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.POST("/appointments", h.Appointment.Book)
		auth.GET("/appointments", h.Appointment.ListMine)
		auth.PATCH("/appointments/:id/cancel", h.Appointment.Cancel)
	}

	// 管理者のみ
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(verifier), jwtmw.RequireRole(authentity.RoleAdmin))
	{
		admin.POST("/doctors", h.Doctor.Create)
		admin.GET("/admin/stats", h.Admin.Stats)
		admin.GET("/admin/appointments", h.Admin.Appointments)
		admin.GET("/admin/users", h.Admin.Users)
		admin.GET("/admin/feedback", h.Admin.Feedback)
	}

	return r
}
