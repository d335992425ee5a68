package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	pkgAuth "github.com/polkiloo/gambling/internal/pkg/auth"
	testhelpers "github.com/polkiloo/gambling/internal/test"
)

func TestIdentityUseCaseNewSessionRoundTrip(t *testing.T) {
	key, err := pkgAuth.DeriveKey("secret")
	require.NoError(t, err)
	uc := NewIdentityUseCase(pkgAuth.NewHMACStrategy(key, pkgAuth.Options{TTL: time.Minute}))

	userID, token, err := uc.NewSession()
	require.NoError(t, err)
	_, err = uuid.Parse(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := uc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, resolved)
}

func TestIdentityUseCaseSessionsAreDistinct(t *testing.T) {
	uc := NewIdentityUseCase(testhelpers.StrategyStub{})
	first, _, err := uc.NewSession()
	require.NoError(t, err)
	second, _, err := uc.NewSession()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestIdentityUseCaseIssueError(t *testing.T) {
	uc := NewIdentityUseCase(testhelpers.StrategyStub{IssueFn: func(string) (string, error) {
		return "", errors.New("cannot issue token")
	}})
	_, _, err := uc.NewSession()
	require.Error(t, err)
}

func TestIdentityUseCaseParseToken(t *testing.T) {
	uc := NewIdentityUseCase(testhelpers.StrategyStub{ParseFn: func(token string) (string, error) {
		if token == "good" {
			return "user-1", nil
		}
		return "", pkgAuth.ErrInvalidToken
	}})

	id, err := uc.ParseToken("good")
	require.NoError(t, err)
	require.Equal(t, "user-1", id)

	_, err = uc.ParseToken("bad")
	require.ErrorIs(t, err, pkgAuth.ErrInvalidToken)

	_, err = uc.ParseToken("")
	require.ErrorIs(t, err, pkgAuth.ErrInvalidToken)
}
