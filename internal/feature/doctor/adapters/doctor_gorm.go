// Package adapters はdoctorフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"clinic_backend/internal/feature/doctor/domain/entity"
	"clinic_backend/internal/feature/doctor/usecase"
)

// コンパイル時にインターフェース実装を検証
var _ usecase.DoctorRepository = (*doctorRepository)(nil)

// likeEscaper は検索語中のLIKEメタ文字をリテラルとして扱うためにエスケープします。
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// doctorRepository はGORMによるDoctorRepositoryの実装です。
type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository はdoctorRepositoryの新しいインスタンスを生成します。
func NewDoctorRepository(db *gorm.DB) *doctorRepository {
	return &doctorRepository{db: db}
}

// List は条件に一致する医師を評価の高い順、同評価は名前順で返します。
func (r *doctorRepository) List(ctx context.Context, f entity.Filter) ([]entity.Doctor, error) {
	q := r.db.WithContext(ctx).Model(&entity.Doctor{})
	if f.Specialty != "" {
		q = q.Where("specialty = ?", f.Specialty)
	}
	if f.Search != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(f.Search))+"%")
	}
	doctors := make([]entity.Doctor, 0)
	if err := q.Order("rating DESC").Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// FindByID はIDで医師を検索します。
func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	var d entity.Doctor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDoctorNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create は医師を保存します。
func (r *doctorRepository) Create(ctx context.Context, d *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// Count は医師の総数を返します。
func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
