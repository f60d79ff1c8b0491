package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/core/bus"
	"go-graphql-marketplace/internal/session"
	gqlapi "go-graphql-marketplace/internal/transport/graphql"
	mdw "go-graphql-marketplace/internal/transport/http/middleware"
	"go-graphql-marketplace/internal/transport/ws"
)

type Options struct {
	Resolvers gqlapi.Resolvers
	JWTer     *auth.JWTer
	Sessions  session.Store
	Bus       *bus.Bus
	GraphiQL  bool
}

// NewAPIEngine 组装引擎：硬化中间件链 → 身份解析 → /graphql 单端点
func NewAPIEngine(l *zap.Logger, o Options) (*gin.Engine, error) {
	schema, err := gqlapi.New(o.Resolvers)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
		mdw.Identity(o.JWTer, o.Sessions),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// GraphQL：GET 出 GraphiQL，POST 执行
	h := gqlapi.NewHandler(schema, o.GraphiQL)
	r.POST("/graphql", gin.WrapH(h))
	r.GET("/graphql", gin.WrapH(h))

	// 实时事件推送
	r.GET("/ws/events", ws.EventsHandler(o.Bus, l))

	return r, nil
}
