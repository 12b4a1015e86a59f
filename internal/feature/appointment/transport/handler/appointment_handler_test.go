package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic_backend/internal/feature/appointment/domain/entity"
	"clinic_backend/internal/feature/appointment/usecase"
	jwtmw "clinic_backend/internal/platform/jwt"
	"clinic_backend/internal/platform/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// mockAppointmentUsecase はAppointmentUsecaseインターフェースのモック実装です。
type mockAppointmentUsecase struct {
	BookFunc     func(ctx context.Context, patientID string, in usecase.BookInput) (*entity.Appointment, error)
	ListMineFunc func(ctx context.Context, patientID string) ([]entity.Appointment, error)
	CancelFunc   func(ctx context.Context, actor usecase.Actor, id string) (*entity.Appointment, error)
}

func (m *mockAppointmentUsecase) Book(ctx context.Context, patientID string, in usecase.BookInput) (*entity.Appointment, error) {
	if m.BookFunc != nil {
		return m.BookFunc(ctx, patientID, in)
	}
	return &entity.Appointment{ID: "a-1", PatientID: patientID, DoctorID: in.DoctorID, Status: entity.StatusConfirmed}, nil
}

func (m *mockAppointmentUsecase) ListMine(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *mockAppointmentUsecase) Cancel(ctx context.Context, actor usecase.Actor, id string) (*entity.Appointment, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, actor, id)
	}
	return &entity.Appointment{ID: id, Status: entity.StatusCancelled}, nil
}

// withIdentity はAuthRequiredが設定するコンテキスト値を模倣します。
func withIdentity(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Set(jwtmw.ContextRole, role)
		c.Next()
	}
}

func TestAppointmentHandler_Book(t *testing.T) {
	valid := gin.H{"doctorId": "d-1", "date": "2026-11-01", "time": "10:30", "symptoms": "headache", "phone": "5551234567"}

	tests := []struct {
		name           string
		body           gin.H
		bookFunc       func(ctx context.Context, patientID string, in usecase.BookInput) (*entity.Appointment, error)
		expectedStatus int
		expectedFields []string
	}{
		{name: "success", body: valid, expectedStatus: http.StatusOK},
		{
			name:           "failure: bad date and time",
			body:           gin.H{"doctorId": "d-1", "date": "01/11/2026", "time": "25:00", "symptoms": "x", "phone": "5551234567"},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"date", "time"},
		},
		{
			name:           "failure: everything missing",
			body:           gin.H{},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"doctorId", "date", "time", "symptoms", "phone"},
		},
		{
			name:           "failure: whitespace-only symptoms and doctor",
			body:           gin.H{"doctorId": "  ", "date": "2026-11-01", "time": "10:30", "symptoms": "   ", "phone": "5551234567"},
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"doctorId", "symptoms"},
		},
		{
			name: "failure: unknown doctor",
			body: valid,
			bookFunc: func(ctx context.Context, patientID string, in usecase.BookInput) (*entity.Appointment, error) {
				return nil, usecase.ErrDoctorNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "failure: internal",
			body: valid,
			bookFunc: func(ctx context.Context, patientID string, in usecase.BookInput) (*entity.Appointment, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&mockAppointmentUsecase{BookFunc: tt.bookFunc})
			router := gin.New()
			router.POST("/appointments", withIdentity("p-1", "patient"), h.Book)

			b, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/appointments", bytes.NewBuffer(b))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "confirmed", body["status"])
				assert.Equal(t, "p-1", body["patientId"])
				return
			}
			if len(tt.expectedFields) > 0 {
				var fields []string
				for _, d := range body["details"].([]any) {
					fields = append(fields, d.(map[string]any)["field"].(string))
				}
				assert.ElementsMatch(t, tt.expectedFields, fields)
			}
		})
	}
}

func TestAppointmentHandler_ListMine(t *testing.T) {
	var gotPatient string
	h := NewAppointmentHandler(&mockAppointmentUsecase{
		ListMineFunc: func(ctx context.Context, patientID string) ([]entity.Appointment, error) {
			gotPatient = patientID
			return []entity.Appointment{{ID: "a-2"}, {ID: "a-1"}}, nil
		},
	})
	router := gin.New()
	router.GET("/appointments", withIdentity("p-1", "patient"), h.ListMine)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/appointments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p-1", gotPatient)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "a-2", body[0]["id"])
}

func TestAppointmentHandler_Cancel(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		cancelErr      error
		expectedStatus int
	}{
		{name: "owner", role: "patient", expectedStatus: http.StatusOK},
		{name: "forbidden", role: "patient", cancelErr: usecase.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "missing", role: "admin", cancelErr: usecase.ErrAppointmentNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotActor usecase.Actor
			h := NewAppointmentHandler(&mockAppointmentUsecase{
				CancelFunc: func(ctx context.Context, actor usecase.Actor, id string) (*entity.Appointment, error) {
					gotActor = actor
					if tt.cancelErr != nil {
						return nil, tt.cancelErr
					}
					return &entity.Appointment{ID: id, Status: entity.StatusCancelled}, nil
				},
			})
			router := gin.New()
			router.PATCH("/appointments/:id/cancel", withIdentity("u-1", tt.role), h.Cancel)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPatch, "/appointments/a-1/cancel", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, usecase.Actor{UserID: "u-1", Role: tt.role}, gotActor)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
			}
		})
	}
}
