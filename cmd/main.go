package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"cv-agent-go/internal/api/handler"
	"cv-agent-go/internal/api/router"
	"cv-agent-go/internal/config"
	appCoreLogger "cv-agent-go/internal/logger"
	"cv-agent-go/internal/outbox"
	"cv-agent-go/internal/processor"
	"cv-agent-go/internal/storage"
)

func main() {
	initLogger()

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	// 消息中继：把发件箱消息投递到RabbitMQ
	relayLogger := log.New(appCoreLogger.Logger, "[MessageRelay] ", log.LstdFlags|log.Lshortfile)
	messageRelay := outbox.NewMessageRelay(storageManager.MySQL.DB(), storageManager.RabbitMQ, relayLogger)
	messageRelay.Start()
	glog.Info("消息中继服务已启动")

	// 提取流水线：Redis支撑的跨实例去重集合
	pipeline := processor.NewPipeline(&cfg.Pipeline, appCoreLogger.Logger,
		processor.WithDedupGuard(processor.NewRedisDedupGuard(storageManager.Redis)),
	)
	documentService := processor.NewDocumentService(storageManager, pipeline, &cfg.RabbitMQ, appCoreLogger.Logger)
	glog.Info("文档处理流水线初始化成功")

	documentHandler := handler.NewDocumentHandler(cfg, storageManager, documentService)

	// 上传事件消费者异步触发提取
	var consumerStop chan struct{}
	if storageManager.RabbitMQ != nil {
		consumerStop, err = documentHandler.StartUploadConsumer(ctx)
		if err != nil {
			glog.Fatalf("启动上传事件消费者失败: %v", err)
		}
		glog.Info("上传事件消费者已启动")
	}

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, documentHandler)
	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	if consumerStop != nil {
		close(consumerStop)
	}
	messageRelay.Stop()
	glog.Info("后台任务已停止")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

func initLogger() {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	level := zerolog.InfoLevel
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = "15:04:05"

	logger := zerolog.New(consoleWriter).With().Timestamp().Caller().Logger()

	appCoreLogger.Logger = logger
	zlog.Logger = logger

	// Hertz的全局日志走zerolog适配器，与应用日志格式一致
	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	glog.SetLevel(glog.LevelInfo)
}
