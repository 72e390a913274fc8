package processor

import (
	"context"
	"sync"

	"cv-agent-go/internal/storage"
)

// MemoryDedupGuard 进程内的去重集合，互斥锁保护
// 适用于测试和单机CLI场景；服务端部署使用RedisDedupGuard
type MemoryDedupGuard struct {
	mu   sync.Mutex
	seen map[string]string // md5 -> 文档UUID
}

// NewMemoryDedupGuard 创建进程内去重集合
func NewMemoryDedupGuard() *MemoryDedupGuard {
	return &MemoryDedupGuard{seen: make(map[string]string)}
}

// Check 哈希已存在时返回true及归属的文档UUID，不修改集合
func (g *MemoryDedupGuard) Check(_ context.Context, md5 string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	uuid, exists := g.seen[md5]
	return uuid, exists, nil
}

// Record 登记哈希
func (g *MemoryDedupGuard) Record(_ context.Context, md5, documentUUID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seen[md5] = documentUUID
	return nil
}

// RedisDedupGuard Redis支撑的跨进程去重集合
// 集合带可配置的过期窗口，跨服务实例共享
type RedisDedupGuard struct {
	redis *storage.Redis
}

// NewRedisDedupGuard 创建Redis去重集合
func NewRedisDedupGuard(redis *storage.Redis) *RedisDedupGuard {
	return &RedisDedupGuard{redis: redis}
}

// Check 查询哈希是否已登记，命中时反查归属的文档UUID
func (g *RedisDedupGuard) Check(ctx context.Context, md5 string) (string, bool, error) {
	exists, err := g.redis.CheckTextMD5Exists(ctx, md5)
	if err != nil || !exists {
		return "", exists, err
	}
	// 反查失败不影响去重判定，UUID只用于提示信息
	uuid, _ := g.redis.GetDocumentUUIDByMD5(ctx, md5)
	return uuid, true, nil
}

// Record 登记哈希并刷新集合的过期窗口
func (g *RedisDedupGuard) Record(ctx context.Context, md5, documentUUID string) error {
	return g.redis.RecordTextMD5(ctx, md5, documentUUID)
}
