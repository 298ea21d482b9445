package conf

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/service"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/cache"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/database"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/mailer"
)

/**
 * @time: 2024/11/7 22:40
 * @file: conf.go
 * @description: application configuration
 */

type AppConfig struct {
	Log      log.Conf
	Http     httpx.Http
	Database database.Database
	Redis    cache.Redis
	Invite   service.InviteConf
	Mail     mailer.Conf
}

var (
	cfg  AppConfig
	once sync.Once
)

func NewConf(confFile string) AppConfig {
	once.Do(func() {
		var err error
		cfg, err = LoadConfigFile(confFile)
		if err != nil {
			panic(fmt.Sprintf("load conf file error: %s", err))
		}
	})
	return cfg
}

// LoadConfigFile reads the toml config and keeps watching it, a changed file
// is re-unmarshalled in place.
func LoadConfigFile(confFile string) (AppConfig, error) {

	// SetConfigName would discard the explicit file path, so only the file
	// given on the command line is consulted
	config := viper.New()
	config.SetConfigFile(confFile)
	if err := config.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read configuration file: %v", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, re-reading: %s", e.Name)
		if err := config.Unmarshal(&cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})
	if err := config.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}

	return cfg, nil
}

func GetString(key string) string {
	return viper.GetString(key)
}
