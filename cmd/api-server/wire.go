//go:build wireinject
// +build wireinject

package main

import (
	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/handler"
	"Inkwell/pkg/client"
	"Inkwell/pkg/database"
	"Inkwell/pkg/rocketmq"
	"Inkwell/pkg/server"
	"Inkwell/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		rocketmq.InitProducer,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Blog), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Reaction), "*"),
		wire.Struct(new(handler.Subscription), "*"),
		wire.Struct(new(handler.Activity), "*"),
		wire.Struct(new(handler.Profile), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
