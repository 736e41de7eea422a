package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leetcode_proxy/config"
	"leetcode_proxy/db"
	"leetcode_proxy/handlers"
	"leetcode_proxy/logger"
	"leetcode_proxy/metrics"
	"leetcode_proxy/repository"
	"leetcode_proxy/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	m := metrics.New()

	// 数据库连接失败不退出，注册表接口以降级模式返回 500
	conn, err := db.Open(cfg)
	if err != nil {
		logger.ErrorStack("初始化MySQL失败，注册表接口将不可用", err)
	} else {
		logger.Info("MySQL连接成功",
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns,
			"conn_max_lifetime", cfg.DB.ConnMaxLifetime)
	}
	repo := repository.NewRegistryRepo(conn, cfg.AutoMigrateEnabled())

	// 启动时建表失败不致命，数据库恢复后由首次注册表操作补建
	if cfg.AutoMigrateEnabled() && err == nil {
		if err := repo.EnsureSchema(context.Background()); err != nil {
			logger.ErrorStack("创建注册表失败", err)
		}
	}

	r := handlers.NewRouter(handlers.Dependencies{
		LeetCode: services.NewLeetCodeClient(cfg, m),
		Registry: services.NewRegistry(repo, cfg.Registry.UniqueUsernames, m),
		Metrics:  m,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  seconds(cfg.Timeouts.ReadSec),
		WriteTimeout: seconds(cfg.Timeouts.WriteSec),
		IdleTimeout:  seconds(cfg.Timeouts.IdleSec),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("服务器启动", "address", serverAddr, "upstream", cfg.LeetCode.Endpoint)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP服务异常退出", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("收到退出信号，开始关闭服务")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Timeouts.ShutdownSec))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP服务关闭失败", "error", err)
	}
	if err := repo.Close(); err != nil {
		logger.Error("关闭数据库连接失败", "error", err)
	}
	logger.Info("服务已退出")
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
