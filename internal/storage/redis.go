package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cv-agent-go/internal/config"
	"cv-agent-go/internal/constants"
)

// Redis 键值存储适配器
// 承担文本MD5去重集合与档案缓存两类职责
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter 创建Redis客户端连接
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		// 连接池设置
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		// 超时设置
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,

		// 重试设置
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond,

		// 连接生命周期
		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute,
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	return &Redis{
		Client: client,
		config: cfg,
	}, nil
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Ping 检查Redis连接
func (r *Redis) Ping(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	return r.Client.Ping(ctx).Err()
}

// GetMD5ExpireDuration 返回配置的MD5记录过期时间
func (r *Redis) GetMD5ExpireDuration() time.Duration {
	days := r.config.MD5RecordExpireDays
	if days <= 0 {
		days = 365 // 默认1年
	}
	return time.Duration(days) * 24 * time.Hour
}

// CheckTextMD5Exists 检查提取文本的MD5是否已在去重集合中
func (r *Redis) CheckTextMD5Exists(ctx context.Context, md5Hex string) (bool, error) {
	return r.checkMD5ExistsInternal(ctx, constants.KeyTextMD5Set, md5Hex)
}

// RecordTextMD5 登记提取文本的MD5并记录其归属的文档UUID
// 集合首次写入时设置过期窗口，已有的过期时间不被覆盖
func (r *Redis) RecordTextMD5(ctx context.Context, md5Hex, documentUUID string) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	pipe := r.Client.Pipeline()
	pipe.SAdd(ctx, constants.KeyTextMD5Set, md5Hex)
	pipe.ExpireNX(ctx, constants.KeyTextMD5Set, r.GetMD5ExpireDuration())
	pipe.Set(ctx, fmt.Sprintf(constants.KeyMD5ToDocumentUUID, md5Hex), documentUUID, r.GetMD5ExpireDuration())
	_, err := pipe.Exec(ctx)
	return err
}

// GetDocumentUUIDByMD5 由文本MD5反查文档UUID，用于重复上传的提示信息
func (r *Redis) GetDocumentUUIDByMD5(ctx context.Context, md5Hex string) (string, error) {
	uuid, err := r.Client.Get(ctx, fmt.Sprintf(constants.KeyMD5ToDocumentUUID, md5Hex)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return uuid, err
}

// CheckRawFileMD5Exists 检查原始文件MD5是否已登记（上传端的快速去重）
func (r *Redis) CheckRawFileMD5Exists(ctx context.Context, md5Hex string) (bool, error) {
	return r.checkMD5ExistsInternal(ctx, constants.RawFileMD5SetKey, md5Hex)
}

// AddRawFileMD5 登记原始文件MD5
func (r *Redis) AddRawFileMD5(ctx context.Context, md5Hex string) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	pipe := r.Client.Pipeline()
	pipe.SAdd(ctx, constants.RawFileMD5SetKey, md5Hex)
	pipe.ExpireNX(ctx, constants.RawFileMD5SetKey, r.GetMD5ExpireDuration())
	_, err := pipe.Exec(ctx)
	return err
}

func (r *Redis) checkMD5ExistsInternal(ctx context.Context, setKey, md5Hex string) (bool, error) {
	if r.Client == nil {
		return false, fmt.Errorf("redis client is not initialized")
	}
	return r.Client.SIsMember(ctx, setKey, md5Hex).Result()
}

// CacheProfileJSON 缓存档案的JSON序列化结果
func (r *Redis) CacheProfileJSON(ctx context.Context, documentUUID string, profileJSON string) error {
	key := fmt.Sprintf(constants.KeyProfileData, documentUUID)
	return r.Client.Set(ctx, key, profileJSON, constants.ProfileCacheDuration).Err()
}

// DeleteCachedProfile 删除档案缓存，文档删除时调用
func (r *Redis) DeleteCachedProfile(ctx context.Context, documentUUID string) error {
	key := fmt.Sprintf(constants.KeyProfileData, documentUUID)
	return r.Client.Del(ctx, key).Err()
}

// GetCachedProfileJSON 读取缓存的档案JSON，未命中时返回空串
func (r *Redis) GetCachedProfileJSON(ctx context.Context, documentUUID string) (string, error) {
	key := fmt.Sprintf(constants.KeyProfileData, documentUUID)
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}
