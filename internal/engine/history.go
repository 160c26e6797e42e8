package engine

import (
	"fmt"
	"sync"

	"roundtable/internal/market"
)

// HistoryStore 保存各 symbol 的日线序列（most-recent-first），
// 供周期检测取数。行情刷新循环写、persona 评估读。
type HistoryStore struct {
	mu     sync.RWMutex
	series map[string][]market.Candle
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{series: make(map[string][]market.Candle)}
}

// Put 整体替换该 symbol 的序列。
func (s *HistoryStore) Put(symbol string, candles []market.Candle) {
	cp := make([]market.Candle, len(candles))
	copy(cp, candles)
	s.mu.Lock()
	s.series[symbol] = cp
	s.mu.Unlock()
}

// History 实现 cycle.HistoryProvider。
func (s *HistoryStore) History(symbol string) ([]market.Candle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candles, ok := s.series[symbol]
	if !ok {
		return nil, fmt.Errorf("no history for %s", symbol)
	}
	out := make([]market.Candle, len(candles))
	copy(out, candles)
	return out, nil
}
