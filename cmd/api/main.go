package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/auth"
	"go-graphql-marketplace/internal/core/bus"
	"go-graphql-marketplace/internal/core/config"
	"go-graphql-marketplace/internal/core/logger"
	"go-graphql-marketplace/internal/feature/listing"
	"go-graphql-marketplace/internal/feature/order"
	"go-graphql-marketplace/internal/feature/user"
	"go-graphql-marketplace/internal/session"
	"go-graphql-marketplace/internal/store"
	gqlapi "go-graphql-marketplace/internal/transport/graphql"
	"go-graphql-marketplace/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.Build(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		AddCaller:   true,
		Development: !cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.File.Enable,
			Filename:   cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	defer cleanup()

	// 内存 store：进程生命周期内有效，重启即回种子数据
	st := store.New()
	if cfg.App.Seed {
		st.Seed()
		log.Info("seed data loaded")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLHour) * time.Hour,
	}

	// 会话集合：默认进程内，多实例部署切 redis
	var sessions session.Store
	switch cfg.Session.Backend {
	case "redis":
		sessions = session.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("session backend: redis", zap.String("addr", cfg.Redis.Addr))
	default:
		sessions = session.NewMemory()
		log.Info("session backend: memory")
	}

	// 事件总线（websocket feed 的源头）
	b := bus.New()

	resolvers := gqlapi.Resolvers{
		Users:    user.NewService(st, jwter, sessions, log),
		Listings: listing.NewService(st, b, log),
		Orders:   order.NewService(st, b, log),
		Store:    st,
	}

	r, err := router.NewAPIEngine(log, router.Options{
		Resolvers: resolvers,
		JWTer:     jwter,
		Sessions:  sessions,
		Bus:       b,
		GraphiQL:  cfg.App.Env != "prod",
	})
	if err != nil {
		log.Fatal("build schema", zap.Error(err))
	}

	addr := fmt.Sprintf("%s:%d", cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := &http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    time.Duration(cfg.App.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:   time.Duration(cfg.App.HTTP.WriteTimeoutSec) * time.Second,
		IdleTimeout:    time.Duration(cfg.App.HTTP.IdleTimeoutSec) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("marketplace api starting",
		zap.String("addr", addr),
		zap.String("graphql", baseURL+"/graphql"),
		zap.String("health", baseURL+"/health"),
		zap.String("events", "ws://"+host4human+":"+fmt.Sprint(cfg.App.HTTP.Port)+"/ws/events"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("marketplace api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("marketplace api stopped gracefully")
}
