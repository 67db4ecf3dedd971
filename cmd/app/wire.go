//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/astro-profile/internal/bootstrap"
	"github.com/yanqian/astro-profile/internal/domain/astro"
	"github.com/yanqian/astro-profile/internal/domain/auth"
	"github.com/yanqian/astro-profile/internal/domain/post"
	"github.com/yanqian/astro-profile/internal/infra/config"
	httpiface "github.com/yanqian/astro-profile/internal/interface/http"
	"github.com/yanqian/astro-profile/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideAstroConfig,
		providePostConfig,
		provideEphemeris,
		provideDaylightClock,
		providePostgresPool,
		provideAuthRepository,
		provideProfileRepository,
		providePostRepository,
		provideStatsStore,
		astro.NewEngine,
		astro.NewService,
		auth.NewService,
		post.NewService,
		wire.Bind(new(post.Authors), new(auth.Service)),
		httpiface.NewHandler,
		httpiface.NewPostHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
