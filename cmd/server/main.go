package main

import (
	"context"
	"os"

	"github.com/quantiv/isi-web/internal/dashboard"
	"github.com/quantiv/isi-web/pkg/config"
	"github.com/quantiv/isi-web/pkg/cookie"
	"github.com/quantiv/isi-web/pkg/entitlement"
	"github.com/quantiv/isi-web/pkg/environment"
	"github.com/quantiv/isi-web/pkg/httpserver"
	"github.com/quantiv/isi-web/pkg/logger"
	"github.com/quantiv/isi-web/pkg/requestid"
)

func main() {
	// ENV_FILE points at an extra env file, e.g. per-deployment secrets.
	if path := os.Getenv("ENV_FILE"); path != "" {
		if err := config.LoadEnv(path); err != nil {
			panic(err)
		}
	}

	var (
		appCfg    dashboard.Config
		httpCfg   httpserver.Config
		cookieCfg cookie.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&cookieCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.AppEnv, appCfg.AppName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			entitlement.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	cookieOpts := []cookie.Option{}
	if environment.Normalize(appCfg.AppEnv) == environment.Production {
		cookieOpts = append(cookieOpts, cookie.WithSecure(true))
	}
	cookies, err := cookie.NewFromConfig(cookieCfg, cookieOpts...)
	if err != nil {
		log.Error("invalid cookie configuration", logger.Error(err))
		os.Exit(1)
	}

	session := dashboard.NewPlanSession(cookies, appCfg, log)
	router := dashboard.New(appCfg, session, log).Router()

	srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
