//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改本文件后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如store.NewBookRepository）
// - Injector: 声明最终要构造的目标类型（*gin.Engine）
// - wire.Bind: 接口 → 实现（如book.Transactor → *store.TxManager）

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/xiebiao/library/internal/application/catalog"
	appuser "github.com/xiebiao/library/internal/application/user"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/insight"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含：数据库连接、Redis连接、事件发布
var infrastructureSet = wire.NewSet(
	store.NewDB,
	redis.NewClient,
	provideEventPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	store.NewUserRepository,
	store.NewAuthorRepository,
	store.NewPublisherRepository,
	store.NewBookRepository,
	store.NewInsightRepository,
	store.NewTxManager,
	wire.Bind(new(book.Transactor), new(*store.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	provideHashCost,
	user.NewService,
	author.NewService,
	publisher.NewService,
	book.NewService,
	insight.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewRefreshUseCase,
	appuser.NewChangePasswordUseCase,
	appuser.NewProfileUseCase,
	catalog.NewAuthorUseCase,
	catalog.NewPublisherUseCase,
	catalog.NewBookUseCase,
	catalog.NewInsightUseCase,
)

// middlewareSet 中间件依赖
// SessionStore同时实现会话存储和Token黑名单
var middlewareSet = wire.NewSet(
	provideJWTManager,
	redis.NewSessionStore,
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.SessionChecker), new(*redis.SessionStore)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewAuthorHandler,
	handler.NewPublisherHandler,
	handler.NewBookHandler,
	handler.NewInsightHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 初始化整个应用
// 返回配置好的Gin引擎和cleanup函数（关闭数据库、Redis、MQ连接）
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
	)
	return nil, nil, nil
}
