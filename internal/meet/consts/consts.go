package consts

/**
 * @time: 2024/11/3 22:12
 * @file: consts.go
 * @description: cache key constants
 */

const (
	// DefaultRedisKeyPrefix namespaces cache keys when no prefix is configured.
	DefaultRedisKeyPrefix = "scrutiny:"

	// UserInfoKey prefixes the cached user profile, keyed by user id.
	UserInfoKey = "user:"

	// TokenKey prefixes the cached session token info, keyed by user id.
	TokenKey = "token:"
)
