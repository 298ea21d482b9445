package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRepoCacheKeys(t *testing.T) {
	ur := NewUserRepo(nil, nil, "").(*UserRepo)
	assert.Equal(t, "scrutiny:user:u-1", ur.userInfoKey("u-1"))
	assert.Equal(t, "scrutiny:token:u-1", ur.tokenKey("u-1"))

	// the configured prefix replaces the default wholesale
	ur = NewUserRepo(nil, nil, "meet:").(*UserRepo)
	assert.Equal(t, "meet:user:u-1", ur.userInfoKey("u-1"))
	assert.Equal(t, "meet:token:u-1", ur.tokenKey("u-1"))
}
