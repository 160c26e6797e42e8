// Package engine 把快照缓存、persona 评估与共识聚合装配成一轮可执行的评估。
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"roundtable/internal/analysis/indicator"
	"roundtable/internal/config"
	"roundtable/internal/cycle"
	"roundtable/internal/decision"
	"roundtable/internal/logger"
	"roundtable/internal/market"
	"roundtable/internal/persona"
)

// Engine 评估协调器。除缓存与历史序列外无共享可变状态。
type Engine struct {
	cache      *market.SnapshotCache
	history    *HistoryStore
	personas   []persona.Persona
	advisory   *persona.Wood
	aggregator *decision.Aggregator
	detector   *cycle.Detector
	builder    *cycle.Builder
	sizer      *cycle.Sizer

	portfolioValue decimal.Decimal
}

// New 装配默认 persona 组。persona 集合非法属于编程错误，直接报错。
func New(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	history := NewHistoryStore()
	detector := cycle.NewDetector()
	sizer := cycle.NewSizer(cfg.Sizing.MaxRiskPct)
	builder := cycle.NewBuilder().WithSizer(sizer)
	personas := persona.DefaultSet(detector, builder, history)
	return newEngine(cfg, history, detector, builder, sizer, personas)
}

// NewWithPersonas 注入自定义 persona 集合（测试与灰度用）。
func NewWithPersonas(cfg *config.Config, history *HistoryStore, personas []persona.Persona) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if history == nil {
		history = NewHistoryStore()
	}
	detector := cycle.NewDetector()
	sizer := cycle.NewSizer(cfg.Sizing.MaxRiskPct)
	builder := cycle.NewBuilder().WithSizer(sizer)
	return newEngine(cfg, history, detector, builder, sizer, personas)
}

func newEngine(cfg *config.Config, history *HistoryStore, detector *cycle.Detector, builder *cycle.Builder, sizer *cycle.Sizer, personas []persona.Persona) (*Engine, error) {
	if len(personas) == 0 {
		return nil, fmt.Errorf("engine requires at least one persona")
	}
	seen := make(map[string]bool, len(personas))
	for _, p := range personas {
		if p.Name() == "" {
			return nil, fmt.Errorf("persona with empty name")
		}
		if seen[p.Name()] {
			return nil, fmt.Errorf("duplicate persona name: %s", p.Name())
		}
		seen[p.Name()] = true
	}
	policy := decision.CountPolicy{
		MinBuyVotes:          cfg.Consensus.MinBuyVotes,
		MinAvgConviction:     cfg.Consensus.MinAvgConviction,
		MinCategoryDiversity: cfg.Consensus.MinCategoryDiversity,
	}
	return &Engine{
		cache:          market.NewSnapshotCache(time.Duration(cfg.Cache.TTLSeconds) * time.Second),
		history:        history,
		personas:       personas,
		advisory:       persona.NewWood(),
		aggregator:     decision.NewAggregator(policy),
		detector:       detector,
		builder:        builder,
		sizer:          sizer,
		portfolioValue: decimal.NewFromInt(cfg.Sizing.PortfolioValue),
	}, nil
}

// Cache 暴露快照缓存给行情采集方。
func (e *Engine) Cache() *market.SnapshotCache { return e.cache }

// History 暴露历史序列存储给行情采集方。
func (e *Engine) History() *HistoryStore { return e.history }

// UpdateMarketData 写入一只标的的最新快照与历史序列。
// 快照缺技术指标且序列可用时，就地补算。
func (e *Engine) UpdateMarketData(symbol string, snap market.Snapshot, candles []market.Candle) {
	if len(candles) > 0 {
		e.history.Put(symbol, candles)
		if snap.SMA20 == 0 || snap.RSI14 == 0 {
			tech, warnings, err := indicator.Compute(market.Chronological(candles))
			if err != nil {
				logger.Warnf("indicator compute failed for %s: %v", symbol, err)
			} else {
				for _, w := range warnings {
					logger.Debugf("indicator %s: %s", symbol, w)
				}
				snap = indicator.Apply(snap, tech)
			}
		}
	}
	e.cache.Update(symbol, snap)
}

// Evaluate 跑一轮完整评估：并发执行全部 persona，校验每张票，
// 聚合成共识并打 trace。快照缺失/过期时报错，由调用方决定刷新。
func (e *Engine) Evaluate(ctx context.Context, symbol string) (decision.ConsensusResult, error) {
	snap, ok := e.cache.Get(symbol)
	if !ok {
		return decision.ConsensusResult{}, fmt.Errorf("no fresh snapshot for %s", symbol)
	}

	votes := make([]decision.PersonaVote, len(e.personas))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range e.personas {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v := persona.Evaluate(p, snap)
			if err := decision.ValidateVote(v); err != nil {
				return fmt.Errorf("contract violation: %w", err)
			}
			votes[i] = v
			logger.DumpVerdict(symbol, v.PersonaName, string(v.Action), v.Conviction,
				[]logger.AuditSection{{Title: "REASONING", Body: v.Reasoning}})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return decision.ConsensusResult{}, err
	}

	advisory := e.advisory.Assess(snap)
	if err := decision.ValidateAdvisory(advisory); err != nil {
		return decision.ConsensusResult{}, fmt.Errorf("contract violation: %w", err)
	}

	res := e.aggregator.Aggregate(symbol, votes, &advisory)
	res.TraceID = uuid.NewString()
	logger.Infof("consensus %s: buy=%d sell=%d hold=%d abstain=%d avg_conviction=%.4f diversity=%d passes=%v trace=%s",
		symbol, res.BuyCount, res.SellCount, res.HoldCount, res.AbstainCount,
		res.AvgConviction, res.CategoryDiversity, res.PassesThreshold, res.TraceID)
	return res, nil
}

// Thesis 为执行方推导当前快照价下的反身性论点与建议仓位。
func (e *Engine) Thesis(symbol string) (cycle.Thesis, error) {
	snap, ok := e.cache.Get(symbol)
	if !ok {
		return cycle.Thesis{}, fmt.Errorf("no fresh snapshot for %s", symbol)
	}
	analysis := e.detector.DetectSymbol(symbol, e.history)
	return e.builder.Build(symbol, analysis, snap.Close, e.portfolioValue), nil
}
