// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"clinic_backend/internal/app/router"
	"clinic_backend/internal/app/seed"
	adminhandler "clinic_backend/internal/feature/admin/transport/handler"
	adminusecase "clinic_backend/internal/feature/admin/usecase"
	appointmentadapters "clinic_backend/internal/feature/appointment/adapters"
	appointmententity "clinic_backend/internal/feature/appointment/domain/entity"
	appointmenthandler "clinic_backend/internal/feature/appointment/transport/handler"
	appointmentusecase "clinic_backend/internal/feature/appointment/usecase"
	authadapters "clinic_backend/internal/feature/auth/adapters"
	authentity "clinic_backend/internal/feature/auth/domain/entity"
	authhandler "clinic_backend/internal/feature/auth/transport/handler"
	authusecase "clinic_backend/internal/feature/auth/usecase"
	doctorentity "clinic_backend/internal/feature/doctor/domain/entity"
	doctorhandler "clinic_backend/internal/feature/doctor/transport/handler"
	doctorusecase "clinic_backend/internal/feature/doctor/usecase"
	feedbackadapters "clinic_backend/internal/feature/feedback/adapters"
	feedbackentity "clinic_backend/internal/feature/feedback/domain/entity"
	feedbackhandler "clinic_backend/internal/feature/feedback/transport/handler"
	feedbackusecase "clinic_backend/internal/feature/feedback/usecase"
	"clinic_backend/internal/platform/config"
	"clinic_backend/internal/platform/http/handler"
	jwtmw "clinic_backend/internal/platform/jwt"
	"clinic_backend/internal/platform/password"
)

// Models returns every persisted entity, in migration order.
func Models() []any {
	return []any{
		&authentity.User{},
		&doctorentity.Doctor{},
		&appointmententity.Appointment{},
		&feedbackentity.Feedback{},
	}
}

// App bundles the wired components main needs.
type App struct {
	Handlers router.Handlers
	Tokens   *jwtmw.Service
	Seed     seed.Deps
}

// NewApp wires repositories, usecases and handlers. rdb may be nil.
func NewApp(cfg config.Config, db *gorm.DB, rdb *redis.Client, hasher *password.Hasher) (*App, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	doctorRepo := NewDoctorRepository(rdb, db, cfg.DoctorCacheTTL)
	appointmentRepo := appointmentadapters.NewAppointmentRepository(db)
	feedbackRepo := feedbackadapters.NewFeedbackRepository(db)

	tokens := jwtmw.NewService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens)
	doctorUC := doctorusecase.NewDoctorUsecase(doctorRepo)
	appointmentUC := appointmentusecase.NewAppointmentUsecase(appointmentRepo, doctorRepo, userRepo)
	feedbackUC := feedbackusecase.NewFeedbackUsecase(feedbackRepo)
	adminUC := adminusecase.NewAdminUsecase(userRepo, appointmentRepo, doctorRepo, feedbackRepo)

	return &App{
		Handlers: router.Handlers{
			Auth:        authhandler.NewAuthHandler(authUC),
			Doctor:      doctorhandler.NewDoctorHandler(doctorUC),
			Appointment: appointmenthandler.NewAppointmentHandler(appointmentUC),
			Feedback:    feedbackhandler.NewFeedbackHandler(feedbackUC),
			Admin:       adminhandler.NewAdminHandler(adminUC),
			Health:      handler.Health(sqlDB),
		},
		Tokens: tokens,
		Seed: seed.Deps{
			Doctors: doctorRepo,
			Users:   userRepo,
			Hasher:  hasher,
			Admin: seed.Admin{
				Email:    cfg.AdminEmail,
				Password: cfg.AdminPassword,
				Name:     cfg.AdminName,
			},
		},
	}, nil
}
