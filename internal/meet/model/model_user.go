package model

/**
 * @time: 2024/11/3 22:20
 * @file: model_user.go
 * @description: user model
 */

type User struct {
	BaseModel
	UserId          string `gorm:"column:user_id" json:"userId"`
	TokenIdentifier string `gorm:"column:token_identifier;uniqueIndex" json:"tokenIdentifier"` // external subject identifier
	Username        string `gorm:"column:username" json:"username"`
	FirstName       string `gorm:"column:first_name" json:"firstName"`
	LastName        string `gorm:"column:last_name" json:"lastName"`
	Password        string `gorm:"column:password" json:"-"`
	Avatar          string `gorm:"column:avatar" json:"avatar"`
	Email           string `gorm:"column:email" json:"email"`
}

func (User) TableName() string {
	return "t_user"
}

type Register struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Password  string `json:"password"`
}

type Login struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	UserId    string `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
}

type LoginResp struct {
	UserInfo UserInfo          `json:"userInfo"`
	Token    map[string]string `json:"token"`
	ExpireAt int64             `json:"-"`
	CreateAt int64             `json:"-"`
}

// TokenInfo token information stored in Redis
type TokenInfo struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpireAt     int64  `json:"expireAt"`
	CreateAt     int64  `json:"createAt"`
}
