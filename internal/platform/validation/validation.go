// Package validation はGinのバインディングに独自のバリデーションタグを登録し、
// バリデーションエラーを構造化された形式に変換します。
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	// DateLayout は予約日付の形式（YYYY-MM-DD）です。
	DateLayout = "2006-01-02"
	// ClockLayout は予約時刻の形式（24時間制 HH:MM）です。
	ClockLayout = "15:04"
	// MaxPasswordBytes はbcryptが扱えるパスワードの最大バイト数です。
	MaxPasswordBytes = 72
)

var (
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]{10,15}$`)
	clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

	registerOnce sync.Once
	registerErr  error
)

// FieldError は1件のバリデーション違反を表します。
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Register はGinのバリデーターに phone / datefmt / clock / bcryptlen / notblank タグを登録します。
// 複数回呼び出しても登録は一度だけ行われます。
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// MustRegister はRegisterに失敗した場合にpanicします。起動時のルーター構築で使用します。
func MustRegister() {
	if err := Register(); err != nil {
		panic(err)
	}
}

// RegisterOn は指定されたバリデーターにカスタムタグを登録します。
func RegisterOn(v *validator.Validate) error {
	// エラーのフィールド名をJSONタグ名で返す
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	tags := map[string]validator.Func{
		"phone":   func(fl validator.FieldLevel) bool { return IsPhone(fl.Field().String()) },
		"datefmt": func(fl validator.FieldLevel) bool { return IsDate(fl.Field().String()) },
		"clock":   func(fl validator.FieldLevel) bool { return IsClock(fl.Field().String()) },
		// 文字数ではなくバイト数で判定する（マルチバイト文字対策）
		"bcryptlen": func(fl validator.FieldLevel) bool { return len(fl.Field().String()) <= MaxPasswordBytes },
		"notblank":  func(fl validator.FieldLevel) bool { return !IsBlank(fl.Field().String()) },
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// IsPhone は数字と記号（+ - ( ) 空白）からなる10〜15文字の電話番号かを判定します。
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsDate はYYYY-MM-DD形式の実在する日付かを判定します。
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsBlank は空文字列または空白のみの文字列かを判定します。
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsClock は24時間制のHH:MM形式かを判定します。
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// Details はバインドエラーから違反フィールドの一覧を取り出します。
// JSONの構文エラーなどバリデーション以外のエラーの場合はnilを返します。
func Details(err error) []FieldError {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}
	out := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
