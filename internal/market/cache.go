package market

import (
	"sync"
	"time"
)

// SnapshotCache 按 symbol 缓存最新 Snapshot，过期惰性剔除。
// 单写多读（行情刷新循环写、persona 并发读），但正确性不依赖该模式：
// 所有操作都在同一把互斥锁内完成。
type SnapshotCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	snap     Snapshot
	cachedAt time.Time
}

func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Update 写入/整体替换快照，时间戳取当前时刻。
func (c *SnapshotCache) Update(symbol string, snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[symbol] = cacheEntry{snap: snap, cachedAt: time.Now()}
}

// Get 返回未过期的快照；过期条目顺手删除。
func (c *SnapshotCache) Get(symbol string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[symbol]
	if !ok {
		return Snapshot{}, false
	}
	if time.Since(entry.cachedAt) > c.ttl {
		delete(c.entries, symbol)
		return Snapshot{}, false
	}
	return entry.snap, true
}

// GetAll 先做一次过期清扫，再返回全部存活快照的拷贝。
func (c *SnapshotCache) GetAll() map[string]Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
	out := make(map[string]Snapshot, len(c.entries))
	for sym, entry := range c.entries {
		out[sym] = entry.snap
	}
	return out
}

// Symbols 先清扫再返回存活 symbol 列表。
func (c *SnapshotCache) Symbols() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
	out := make([]string, 0, len(c.entries))
	for sym := range c.entries {
		out = append(out, sym)
	}
	return out
}

// IsFresh 只读探测，不触发剔除。
func (c *SnapshotCache) IsFresh(symbol string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[symbol]
	if !ok {
		return false
	}
	return time.Since(entry.cachedAt) <= c.ttl
}

// Age 返回条目年龄；过期条目同样返回（用于诊断），不存在时 ok=false。
func (c *SnapshotCache) Age(symbol string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[symbol]
	if !ok {
		return 0, false
	}
	return time.Since(entry.cachedAt), true
}

// Remove 删除单个条目。
func (c *SnapshotCache) Remove(symbol string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, symbol)
}

// Clear 清空全部条目。
func (c *SnapshotCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len 返回当前条目数，不触发清扫。
func (c *SnapshotCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SetTTL 运行期调整 TTL，不回溯修改既有条目的时间戳。
func (c *SnapshotCache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *SnapshotCache) TTL() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl
}

func (c *SnapshotCache) sweepLocked() {
	now := time.Now()
	for sym, entry := range c.entries {
		if now.Sub(entry.cachedAt) > c.ttl {
			delete(c.entries, sym)
		}
	}
}
