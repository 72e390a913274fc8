package processor

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryDedupGuard 验证查询不修改集合、登记后才命中
func TestMemoryDedupGuard(t *testing.T) {
	g := NewMemoryDedupGuard()
	ctx := context.Background()

	_, exists, err := g.Check(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, exists)

	// Check是只读操作，重复查询仍不命中
	_, exists, err = g.Check(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, exists, "查询本身不应登记哈希")

	require.NoError(t, g.Record(ctx, "abc123", "doc-1"))

	owner, exists, err := g.Check(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "doc-1", owner, "命中时返回首次登记的文档UUID")

	// 其他哈希不受影响
	_, exists, err = g.Check(ctx, "def456")
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestMemoryDedupGuardConcurrent 并发登记与查询不丢数据
func TestMemoryDedupGuardConcurrent(t *testing.T) {
	g := NewMemoryDedupGuard()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			md5 := fmt.Sprintf("hash-%d", n)
			assert.NoError(t, g.Record(ctx, md5, fmt.Sprintf("doc-%d", n)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, exists, err := g.Check(ctx, fmt.Sprintf("hash-%d", i))
		require.NoError(t, err)
		assert.True(t, exists)
	}
}
