package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

/**
 * @time: 2024/11/3 15:20
 * @file: database.go
 * @description: gorm mysql connection
 */

type Database struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Name            string
	Params          string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // seconds
	LogLevel        string
}

func (d *Database) dsn() string {
	params := d.Params
	if params == "" {
		params = "charset=utf8mb4&parseTime=True&loc=Local"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		d.Username, d.Password, d.Host, d.Port, d.Name, params)
}

// NewDatabase opens the MySQL connection shared by every repository.
// TranslateError is on so duplicate key violations surface as
// gorm.ErrDuplicatedKey.
func NewDatabase(cfg Database) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.dsn()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(parseGormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		log.Errorw("failed to connect database", "host", cfg.Host, "error", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	log.Infow("database connected",
		"host", cfg.Host,
		"name", cfg.Name,
	)

	return db, nil
}

func parseGormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	default:
		return logger.Error
	}
}
