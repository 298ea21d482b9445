package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/consts"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/cache"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/database"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

type IUserRepository interface {
	AddUser(user *model.User) error
	GetUserByUsername(username string) (*model.User, error)
	GetUserByUsernameOrEmail(username, email string) (*model.User, error)
	GetUserByTokenIdentifier(tokenIdentifier string) (*model.User, error)
	FetchUserInfo(userId string) (*model.UserInfo, error)
	SetTokenInfo(userId string, info *model.TokenInfo, expire time.Duration) error
	GetTokenInfo(userId string) (*model.TokenInfo, error)
	DelTokenInfo(userId string) error
}

type UserRepo struct {
	db        database.IDatabase
	cache     cache.ICache
	userModel *model.User
	keyPrefix string
}

func NewUserRepo(db database.IDatabase, cache cache.ICache, keyPrefix string) IUserRepository {
	if keyPrefix == "" {
		keyPrefix = consts.DefaultRedisKeyPrefix
	}
	return &UserRepo{
		db:        db,
		cache:     cache,
		userModel: &model.User{},
		keyPrefix: keyPrefix,
	}
}

func (ur *UserRepo) userInfoKey(userId string) string {
	return ur.keyPrefix + consts.UserInfoKey + userId
}

func (ur *UserRepo) tokenKey(userId string) string {
	return ur.keyPrefix + consts.TokenKey + userId
}

func (ur *UserRepo) AddUser(user *model.User) error {
	return ur.db.Database().Create(user).Error
}

func (ur *UserRepo) GetUserByUsername(username string) (*model.User, error) {
	var u model.User
	err := ur.db.Database().Table(ur.userModel.TableName()).
		Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UserRepo) GetUserByUsernameOrEmail(username, email string) (*model.User, error) {
	var u model.User
	err := ur.db.Database().Table(ur.userModel.TableName()).
		Where("(username = ? OR email = ?)", username, email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UserRepo) GetUserByTokenIdentifier(tokenIdentifier string) (*model.User, error) {
	var u model.User
	err := ur.db.Database().Table(ur.userModel.TableName()).
		Where("token_identifier = ?", tokenIdentifier).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FetchUserInfo returns the display profile, served from Redis when cached.
func (ur *UserRepo) FetchUserInfo(userId string) (*model.UserInfo, error) {
	ctx := context.Background()
	key := ur.userInfoKey(userId)
	u := &model.UserInfo{UserId: userId}

	if ur.cache != nil {
		userInfoStr, err := ur.cache.Get(ctx, key).Result()
		if err == nil && userInfoStr != "" {
			if err := sonic.UnmarshalString(userInfoStr, u); err != nil {
				log.Errorw("failed to unmarshal user info from Redis", "userId", userId, "error", err)
			} else {
				return u, nil
			}
		}
	}

	err := ur.db.Database().Table(ur.userModel.TableName()).
		Select("user_id, username, first_name, last_name, avatar, email").
		Where("user_id = ?", userId).First(u).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	if ur.cache != nil {
		userInfoJson, err := sonic.MarshalString(u)
		if err != nil {
			log.Errorw("failed to marshal user info", "userId", userId, "error", err)
		} else {
			if err := ur.cache.Set(ctx, key, userInfoJson, time.Hour).Err(); err != nil {
				log.Errorw("failed to cache user info", "userId", userId, "error", err)
			}
		}
	}

	return u, nil
}

func (ur *UserRepo) SetTokenInfo(userId string, info *model.TokenInfo, expire time.Duration) error {
	payload, err := sonic.MarshalString(info)
	if err != nil {
		return err
	}
	return ur.cache.Set(context.Background(), ur.tokenKey(userId), payload, expire).Err()
}

func (ur *UserRepo) GetTokenInfo(userId string) (*model.TokenInfo, error) {
	payload, err := ur.cache.Get(context.Background(), ur.tokenKey(userId)).Result()
	if err != nil {
		return nil, err
	}
	var info model.TokenInfo
	if err := sonic.UnmarshalString(payload, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (ur *UserRepo) DelTokenInfo(userId string) error {
	return ur.cache.Del(context.Background(), ur.tokenKey(userId), ur.userInfoKey(userId)).Err()
}
