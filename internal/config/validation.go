package config

import "fmt"

// validate 对配置进行基础校验。
func validate(c *Config) error {
	if err := c.Cache.validate(); err != nil {
		return err
	}
	if err := c.Consensus.validate(); err != nil {
		return err
	}
	return c.Sizing.validate()
}

func (k *CacheConfig) validate() error {
	if k.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be > 0")
	}
	return nil
}

func (k *ConsensusConfig) validate() error {
	if k.MinAvgConviction < 0 || k.MinAvgConviction > 1 {
		return fmt.Errorf("consensus.min_avg_conviction must be within [0,1]")
	}
	if k.MinBuyVotes < 0 {
		return fmt.Errorf("consensus.min_buy_votes must be >= 0")
	}
	if k.MinCategoryDiversity < 0 {
		return fmt.Errorf("consensus.min_category_diversity must be >= 0")
	}
	return nil
}

func (s *SizingConfig) validate() error {
	if s.MaxRiskPct <= 0 || s.MaxRiskPct > 1 {
		return fmt.Errorf("sizing.max_risk_pct must be within (0,1]")
	}
	if s.PortfolioValue < 0 {
		return fmt.Errorf("sizing.portfolio_value must be >= 0")
	}
	return nil
}
