// Package password はbcryptによるパスワードのハッシュ化と検証を提供します。
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher はコスト係数付きのbcryptハッシャーです。
type Hasher struct {
	cost int
}

// NewHasher は指定コストのHasherを生成します。範囲外のコストはDefaultCostになります。
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash は平文パスワードからソルト付きハッシュを生成します。
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify は平文パスワードがハッシュと一致するかを返します。
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
