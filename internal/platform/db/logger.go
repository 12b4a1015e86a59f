package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// slogWriter はgormのログ出力をslogへ流します。
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Warn("gorm", "message", fmt.Sprintf(format, args...))
}

// NewGormLogger はslogに出力するgorm用ロガーを返します。
// 通常の検索ミス（record not found）はエラーとして記録しません。
func NewGormLogger(l *slog.Logger) logger.Interface {
	if l == nil {
		l = slog.Default()
	}
	return logger.New(slogWriter{log: l}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: NewGormLogger(nil)}
}
