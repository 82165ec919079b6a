package main

import (
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/mq"
)

// provideJWTManager 从配置创建JWT管理器
// jwt.NewManager只需要JWT相关的配置，Wire无法自动从Config提取
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideHashCost bcrypt cost
func provideHashCost(cfg *config.Config) user.HashCost {
	return user.HashCost(cfg.Auth.BcryptCost)
}

// provideEventPublisher mq.enabled时发布到RabbitMQ，否则丢弃事件
func provideEventPublisher(cfg *config.Config) (catalog.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return catalog.NopEventPublisher{}, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("exchange", cfg.MQ.Exchange).Msg("目录事件发布已启用")

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("关闭MQ连接失败")
		}
	}
	return catalog.NewMQEventPublisher(publisher), cleanup, nil
}
