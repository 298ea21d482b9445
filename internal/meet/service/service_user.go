package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/repo"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/jwt"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/middleware"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/id"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

/**
 * @time: 2024/11/5 21:42
 * @file: service_user.go
 * @description: user account + session logic
 */

type UserService struct {
	userRepo repo.IUserRepository
	auth     httpx.Auth
}

func NewUserService(userRepo repo.IUserRepository, auth httpx.Auth) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
	}
}

// Register creates a user row; the token identifier is the local analog of
// the identity provider's subject claim.
func (us *UserService) Register(register *model.Register) error {
	if register.Username == "" || register.Password == "" {
		return ErrCredentialsRequired
	}

	if _, err := us.userRepo.GetUserByUsername(register.Username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(register.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userId := id.GetUUIDWithoutDashes()
	user := &model.User{
		UserId:          userId,
		TokenIdentifier: fmt.Sprintf("local|%s", userId),
		Username:        register.Username,
		FirstName:       register.FirstName,
		LastName:        register.LastName,
		Email:           register.Email,
		Avatar:          register.Avatar,
		Password:        string(hash),
	}
	if err := us.userRepo.AddUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Login verifies the password and issues the session token pair. The token
// subject is the token identifier, what the authorization gate resolves.
func (us *UserService) Login(login *model.Login) (*model.LoginResp, error) {
	if login.Password == "" || (login.Username == "" && login.Email == "") {
		return nil, ErrCredentialsRequired
	}

	user, err := us.userRepo.GetUserByUsernameOrEmail(login.Username, login.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)) != nil {
		return nil, ErrIncorrectPassword
	}

	aToken, rToken, err := jwt.GenToken(user.TokenIdentifier, []byte(us.auth.SecretKey), us.auth.AccessExpire, us.auth.RefreshExpire)
	if err != nil {
		log.Errorw("failed to generate tokens", "userId", user.UserId, "error", err)
		return nil, err
	}

	// dashboard consumers expect millisecond timestamps
	now := time.Now()
	createAt := now.UnixMilli()
	expireAt := now.Add(us.auth.AccessExpire).UnixMilli()

	resp := &model.LoginResp{
		UserInfo: model.UserInfo{
			UserId:    user.UserId,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Avatar:    user.Avatar,
			Email:     user.Email,
		},
		Token: map[string]string{
			"accessToken":  aToken,
			"refreshToken": rToken,
			"expireAt":     fmt.Sprintf("%d", expireAt),
			"createAt":     fmt.Sprintf("%d", createAt),
		},
		ExpireAt: expireAt,
		CreateAt: createAt,
	}

	info := &model.TokenInfo{
		AccessToken:  aToken,
		RefreshToken: rToken,
		ExpireAt:     expireAt,
		CreateAt:     createAt,
	}
	if err := us.userRepo.SetTokenInfo(user.UserId, info, us.auth.AccessExpire); err != nil {
		log.Errorw("failed to cache token info", "userId", user.UserId, "error", err)
	}

	return resp, nil
}

// Refresh exchanges a valid refresh token for a new pair. The subject comes
// from the verified token, never from the caller.
func (us *UserService) Refresh(rToken string) (map[string]string, error) {
	pair, err := jwt.RefreshToken(rToken, us.auth.SecretKey, us.auth.AccessExpire, us.auth.RefreshExpire)
	if err != nil {
		log.Errorw("failed to refresh token", "error", err)
		return nil, err
	}
	return pair, nil
}

func (us *UserService) Logout(userId string) error {
	return us.userRepo.DelTokenInfo(userId)
}

func (us *UserService) GetUserInfo(userId string) (*model.UserInfo, error) {
	return us.userRepo.FetchUserInfo(userId)
}

// Resolve implements middleware.IdentityResolver: map the verified token
// subject to the stored user row.
func (us *UserService) Resolve(_ context.Context, tokenIdentifier string) (*middleware.Identity, error) {
	user, err := us.userRepo.GetUserByTokenIdentifier(tokenIdentifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, middleware.ErrIdentityNotFound
		}
		return nil, err
	}
	return &middleware.Identity{
		UserId:          user.UserId,
		TokenIdentifier: user.TokenIdentifier,
		Username:        user.Username,
		Email:           user.Email,
	}, nil
}
