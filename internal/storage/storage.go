package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cv-agent-go/internal/config"
)

// Storage 存储管理器，聚合所有存储相关依赖
type Storage struct {
	// 对象存储
	MinIO *MinIO

	// 消息队列
	RabbitMQ *RabbitMQ

	// 关系型数据库
	MySQL *MySQL

	// 键值存储
	Redis *Redis
}

// NewStorage 创建存储管理器
// 单个后端初始化失败只记警告，全部失败才返回错误，便于部分降级运行
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	storage := &Storage{}
	var err error
	var initErrors []string

	var minioLogger *log.Logger
	if cfg.Logger.Level == "debug" {
		minioLogger = log.New(os.Stderr, "[MinIOStorage] ", log.LstdFlags|log.Lshortfile)
	} else {
		minioLogger = log.New(io.Discard, "", 0)
	}

	// 初始化MinIO
	storage.MinIO, err = NewMinIO(&cfg.MinIO, minioLogger)
	if err != nil {
		log.Printf("警告: 初始化MinIO失败: %v", err)
		initErrors = append(initErrors, fmt.Sprintf("MinIO: %v", err))
	}

	// 初始化RabbitMQ（如果配置了）
	if cfg.RabbitMQ.URL != "" {
		storage.RabbitMQ, err = NewRabbitMQ(&cfg.RabbitMQ)
		if err != nil {
			log.Printf("警告: 初始化RabbitMQ失败: %v", err)
			initErrors = append(initErrors, fmt.Sprintf("RabbitMQ: %v", err))
		} else if err := storage.setupMessageTopology(&cfg.RabbitMQ); err != nil {
			log.Printf("警告: 初始化RabbitMQ拓扑失败: %v", err)
			initErrors = append(initErrors, fmt.Sprintf("RabbitMQ topology: %v", err))
		}
	}

	// 初始化MySQL
	storage.MySQL, err = NewMySQL(&cfg.MySQL)
	if err != nil {
		log.Printf("警告: 初始化MySQL失败: %v", err)
		initErrors = append(initErrors, fmt.Sprintf("MySQL: %v", err))
	}

	// 初始化Redis
	storage.Redis, err = NewRedisAdapter(&cfg.Redis)
	if err != nil {
		log.Printf("警告: 初始化Redis失败: %v", err)
		initErrors = append(initErrors, fmt.Sprintf("Redis: %v", err))
	}

	if len(initErrors) == 4 {
		return nil, fmt.Errorf("所有存储后端初始化失败: %s", strings.Join(initErrors, "; "))
	}

	return storage, nil
}

// setupMessageTopology 声明文档事件的exchange、队列和绑定
func (s *Storage) setupMessageTopology(cfg *config.RabbitMQConfig) error {
	if err := s.RabbitMQ.EnsureExchange(cfg.DocumentEventsExchange, "topic", true); err != nil {
		return err
	}
	if err := s.RabbitMQ.EnsureQueue(cfg.ProcessingQueue, true); err != nil {
		return err
	}
	return s.RabbitMQ.BindQueue(cfg.ProcessingQueue, cfg.DocumentEventsExchange, cfg.UploadedRoutingKey)
}

// Close 关闭所有存储连接
func (s *Storage) Close() {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("关闭Redis连接失败: %v", err)
		}
	}
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			log.Printf("关闭MySQL连接失败: %v", err)
		}
	}
	if s.RabbitMQ != nil {
		if err := s.RabbitMQ.Close(); err != nil {
			log.Printf("关闭RabbitMQ连接失败: %v", err)
		}
	}
}
