package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/jwt"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/middleware"
)

func newUserService() (*UserService, *fakeUserRepo) {
	users := newFakeUserRepo()
	auth := httpx.Auth{
		SecretKey:     "user-test-secret",
		AccessExpire:  time.Hour,
		RefreshExpire: 2 * time.Hour,
	}
	return NewUserService(users, auth), users
}

func TestRegisterAndLogin(t *testing.T) {
	us, users := newUserService()

	err := us.Register(&model.Register{
		Username: "ann", Password: "s3cret", Email: "ann@example.com", FirstName: "Ann",
	})
	require.NoError(t, err)
	require.Len(t, users.users, 1)
	assert.NotEqual(t, "s3cret", users.users[0].Password) // stored hashed
	assert.Contains(t, users.users[0].TokenIdentifier, "local|")

	resp, err := us.Login(&model.Login{Username: "ann", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "ann", resp.UserInfo.Username)
	assert.NotEmpty(t, resp.Token["accessToken"])
	assert.NotEmpty(t, resp.Token["refreshToken"])

	// login caches the token pair
	info, err := users.GetTokenInfo(resp.UserInfo.UserId)
	require.NoError(t, err)
	assert.Equal(t, resp.Token["accessToken"], info.AccessToken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	us, _ := newUserService()

	require.NoError(t, us.Register(&model.Register{Username: "ann", Password: "x"}))
	err := us.Register(&model.Register{Username: "ann", Password: "y"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterRequiresCredentials(t *testing.T) {
	us, _ := newUserService()

	assert.ErrorIs(t, us.Register(&model.Register{Username: "ann"}), ErrCredentialsRequired)
	assert.ErrorIs(t, us.Register(&model.Register{Password: "x"}), ErrCredentialsRequired)
}

func TestLoginWrongPassword(t *testing.T) {
	us, _ := newUserService()
	require.NoError(t, us.Register(&model.Register{Username: "ann", Password: "right"}))

	_, err := us.Login(&model.Login{Username: "ann", Password: "wrong"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, err = us.Login(&model.Login{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = us.Login(&model.Login{Username: "ann"})
	assert.ErrorIs(t, err, ErrCredentialsRequired)
}

func TestLoginByEmail(t *testing.T) {
	us, _ := newUserService()
	require.NoError(t, us.Register(&model.Register{Username: "ann", Password: "s3cret", Email: "ann@example.com"}))

	resp, err := us.Login(&model.Login{Email: "ann@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "ann", resp.UserInfo.Username)
}

func TestRefreshUsesTokenSubject(t *testing.T) {
	us, users := newUserService()
	require.NoError(t, us.Register(&model.Register{Username: "ann", Password: "s3cret"}))
	resp, err := us.Login(&model.Login{Username: "ann", Password: "s3cret"})
	require.NoError(t, err)

	pair, err := us.Refresh(resp.Token["refreshToken"])
	require.NoError(t, err)
	require.NotEmpty(t, pair["accessToken"])

	// the new access token names the same account the refresh token did
	claims, err := jwt.ParseToken(pair["accessToken"], "user-test-secret")
	require.NoError(t, err)
	assert.Equal(t, users.users[0].TokenIdentifier, claims.UserId)

	_, err = us.Refresh("garbage")
	assert.Error(t, err)
}

func TestLogoutDropsTokenInfo(t *testing.T) {
	us, users := newUserService()
	require.NoError(t, us.Register(&model.Register{Username: "ann", Password: "s3cret"}))
	resp, err := us.Login(&model.Login{Username: "ann", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, us.Logout(resp.UserInfo.UserId))
	_, err = users.GetTokenInfo(resp.UserInfo.UserId)
	assert.Error(t, err)
}

func TestResolveIdentity(t *testing.T) {
	us, users := newUserService()
	require.NoError(t, us.Register(&model.Register{Username: "ann", Password: "x", Email: "ann@example.com"}))

	identity, err := us.Resolve(context.Background(), users.users[0].TokenIdentifier)
	require.NoError(t, err)
	assert.Equal(t, users.users[0].UserId, identity.UserId)
	assert.Equal(t, "ann", identity.Username)

	_, err = us.Resolve(context.Background(), "auth0|unknown")
	assert.ErrorIs(t, err, middleware.ErrIdentityNotFound)
}
