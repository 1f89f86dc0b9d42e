package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/config"
	"github.com/sezikua/agrotyres-shop/internal/controller"
	"github.com/sezikua/agrotyres-shop/internal/middleware"
	"github.com/sezikua/agrotyres-shop/internal/router"
	"github.com/sezikua/agrotyres-shop/internal/service"
	"github.com/sezikua/agrotyres-shop/pkg/directus"
	"github.com/sezikua/agrotyres-shop/pkg/logger"
)

// @title AgroTyres Shop API
// @version 1.0
// @description 农用轮胎商城后端：商品目录、尺寸筛选、Trelleborg 技术数据
// @BasePath /api
func main() {
	// ==================== 配置与日志 ====================
	cfg, err := config.Load()
	if err != nil {
		panic("配置加载失败: " + err.Error())
	}
	if err := logger.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
		panic("日志初始化失败: " + err.Error())
	}
	log := logger.L()
	defer log.Sync()

	// ==================== 依赖装配 ====================
	ctls := initDependencies(cfg, log)

	// ==================== HTTP 服务 ====================
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics())
	router.InitRoutes(r, ctls)

	startServer(r, cfg.ServerPort, log)
}

// initDependencies 装配客户端、服务层与控制器
func initDependencies(cfg *config.Config, log *zap.Logger) *router.Controllers {
	client := directus.NewClient(cfg.DirectusURL, cfg.DirectusToken)

	catalogSvc := service.NewCatalogService(client, log)
	sizeFilterSvc := service.NewSizeFilterService(client, cfg.SizeFilterPath, log)
	trelleborgSvc := service.NewTrelleborgService(cfg.TrelleborgDataDir, log)

	return &router.Controllers{
		Product:    controller.NewProductController(catalogSvc, log),
		SizeFilter: controller.NewSizeFilterController(sizeFilterSvc, log),
		Trelleborg: controller.NewTrelleborgController(trelleborgSvc, log),
	}
}

// startServer 启动 HTTP 服务并处理优雅停机
func startServer(r *gin.Engine, port string, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("收到退出信号，开始停机")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("停机超时", zap.Error(err))
	}
	log.Info("服务已退出")
}
