package http

import (
	"time"
)

/**
 * @time: 2024/11/3 14:02
 * @file: http.go
 * @description: http server configuration
 */

type Http struct {
	Host            string
	Port            int
	Mode            string
	ContextPath     string // api route prefix, e.g. /api/v1
	BodyLimit       int
	Heartbeat       int64
	PProf           bool
	ExposeMetrics   bool
	AccessLog       bool
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
	TLS             TLS
	Auth            Auth
}

type TLS struct {
	CertFile string
	KeyFile  string
}

type Auth struct {
	SecretKey      string
	AccessExpire   time.Duration
	RefreshExpire  time.Duration
	RedisKeyPrefix string
}
