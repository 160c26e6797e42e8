package config

// 默认值常量
const (
	defaultAppEnv                 = "dev"
	defaultAppLogLevel            = "info"
	defaultCacheTTLSeconds        = 300
	defaultConsensusMinBuyVotes   = 5
	defaultConsensusMinConviction = 0.5
	defaultConsensusMinDiversity  = 3
	defaultSizingMaxRiskPct       = 0.02
)

// applyDefaults 为所有子配置应用默认值。
func (c *Config) applyDefaults() {
	c.App.applyDefaults()
	c.Cache.applyDefaults()
	c.Consensus.applyDefaults()
	c.Sizing.applyDefaults()
}

func (a *AppConfig) applyDefaults() {
	if a.Env == "" {
		a.Env = defaultAppEnv
	}
	if a.LogLevel == "" {
		a.LogLevel = defaultAppLogLevel
	}
}

func (k *CacheConfig) applyDefaults() {
	if k.TTLSeconds <= 0 {
		k.TTLSeconds = defaultCacheTTLSeconds
	}
}

func (k *ConsensusConfig) applyDefaults() {
	if k.MinBuyVotes <= 0 {
		k.MinBuyVotes = defaultConsensusMinBuyVotes
	}
	if k.MinAvgConviction <= 0 {
		k.MinAvgConviction = defaultConsensusMinConviction
	}
	if k.MinCategoryDiversity <= 0 {
		k.MinCategoryDiversity = defaultConsensusMinDiversity
	}
}

func (s *SizingConfig) applyDefaults() {
	if s.MaxRiskPct <= 0 {
		s.MaxRiskPct = defaultSizingMaxRiskPct
	}
}
