package usecase

import (
	"fmt"

	"github.com/google/uuid"

	pkgAuth "github.com/polkiloo/gambling/internal/pkg/auth"
)

// IdentityUseCase manages anonymous player sessions.
type IdentityUseCase struct {
	tokens pkgAuth.Strategy
	newID  func() string
}

// NewIdentityUseCase constructs IdentityUseCase.
func NewIdentityUseCase(tokens pkgAuth.Strategy) *IdentityUseCase {
	return &IdentityUseCase{tokens: tokens, newID: uuid.NewString}
}

// NewSession mints a fresh user id together with its signed token.
func (uc *IdentityUseCase) NewSession() (string, string, error) {
	userID := uc.newID()
	token, err := uc.tokens.IssueToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("issue session token: %w", err)
	}
	return userID, token, nil
}

// ParseToken resolves the user id carried by a session token.
func (uc *IdentityUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return uc.tokens.ParseToken(token)
}
