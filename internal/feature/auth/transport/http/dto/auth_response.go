package dto

import (
	"time"

	"clinic_backend/internal/feature/auth/domain/entity"
)

// PublicUser はパスワードを含まない公開用のユーザー表現です。
type PublicUser struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// NewPublicUser はエンティティからPublicUserを生成します。
func NewPublicUser(u *entity.User) PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		JoinedAt: u.JoinedAt,
	}
}

// NewPublicUsers はエンティティのスライスを変換します。空でもnullではなく[]を返します。
func NewPublicUsers(users []entity.User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for i := range users {
		out = append(out, NewPublicUser(&users[i]))
	}
	return out
}

// AuthRes は登録・ログイン成功時のレスポンスです。
type AuthRes struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         PublicUser `json:"user"`
}

// RefreshRes はトークン再発行のレスポンスです。
type RefreshRes struct {
	AccessToken string `json:"accessToken"`
}
