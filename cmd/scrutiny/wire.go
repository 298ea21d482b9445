//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/bootstrap"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/conf"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/repo"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/router"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/service"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/cache"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/database"
	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/mailer"
)

func initApp(logger *zap.Logger, db database.IDatabase, cache cache.ICache, appConf conf.AppConfig) (*bootstrap.App, func(), error) {
	panic(wire.Build(
		confProviderSet,
		mailerProviderSet,
		repo.NewRepositories,
		service.NewServices,
		router.NewRouter,
		bootstrap.NewApp,
	))
}

var confProviderSet = wire.NewSet(
	provideHttpConfig,
	provideAuthConfig,
	provideInviteConfig,
)

func provideHttpConfig(appConf conf.AppConfig) *httpx.Http {
	return &appConf.Http
}

func provideAuthConfig(appConf conf.AppConfig) httpx.Auth {
	return appConf.Http.Auth
}

func provideInviteConfig(appConf conf.AppConfig) service.InviteConf {
	return appConf.Invite
}

var mailerProviderSet = wire.NewSet(
	provideMailer,
)

func provideMailer(appConf conf.AppConfig) mailer.IMailer {
	return mailer.NewMailer(appConf.Mail)
}
