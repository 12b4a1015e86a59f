package db

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestNewGormLogger は検索ミスを記録せず、SQLエラーをslogへ出力することを検証します。
func TestNewGormLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	open, err := OpenerFor(DriverSQLite)
	require.NoError(t, err)
	db, err := open(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&migratedModel{}))

	db = db.Session(&gorm.Session{Logger: NewGormLogger(l)})

	var m migratedModel
	err = db.Where("name = ?", "missing").First(&m).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, buf.String(), "record not found should not be logged")

	err = db.Table("no_such_table").Find(&[]migratedModel{}).Error
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "no_such_table")
}
