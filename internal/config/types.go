package config

// Config 是 roundtable 的主配置载体。
// 静态表（persona 阈值、阶段叙事模板）不在配置里：
// 它们随进程构建一次、只读注入。
type Config struct {
	App       AppConfig       `toml:"app"`
	Cache     CacheConfig     `toml:"cache"`
	Consensus ConsensusConfig `toml:"consensus"`
	Sizing    SizingConfig    `toml:"sizing"`
}

type AppConfig struct {
	Env          string `toml:"env"`
	LogLevel     string `toml:"log_level"`
	LogPath      string `toml:"log_path"`
	AuditLogPath string `toml:"audit_log_path"`
	VerdictDump  bool   `toml:"verdict_dump"`
}

// CacheConfig 快照缓存参数。
type CacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
}

// ConsensusConfig 共识放行策略的三个下限（CountPolicy）。
// 阈值语义待与产品确认，先保持可配置。
type ConsensusConfig struct {
	MinBuyVotes          int     `toml:"min_buy_votes"`
	MinAvgConviction     float64 `toml:"min_avg_conviction"`
	MinCategoryDiversity int     `toml:"min_category_diversity"`
}

// SizingConfig 仓位推导参数。PortfolioValue 以基准货币整数计。
type SizingConfig struct {
	MaxRiskPct     float64 `toml:"max_risk_pct"`
	PortfolioValue int64   `toml:"portfolio_value"`
}
