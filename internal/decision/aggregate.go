package decision

// 中文说明：
// 共识聚合：分动作计票、平均确信度（剔除 ABSTAIN，因其恒为 0 会拉低均值）、
// BUY 方的流派多样性。是否放行交给可注入的 ThresholdPolicy：
// 放行阈值尚未与产品定稿，严禁写死常量。

// ThresholdPolicy 在 (buy_count, avg_conviction, category_diversity) 上
// 判定是否形成可执行信号。
type ThresholdPolicy interface {
	Name() string
	Passes(buyCount int, avgConviction float64, categoryDiversity int) bool
}

// CountPolicy 默认策略：三个下限同时满足才放行。
type CountPolicy struct {
	MinBuyVotes          int
	MinAvgConviction     float64
	MinCategoryDiversity int
}

func (p CountPolicy) Name() string { return "count" }

func (p CountPolicy) Passes(buyCount int, avgConviction float64, categoryDiversity int) bool {
	return buyCount >= p.MinBuyVotes &&
		avgConviction >= p.MinAvgConviction &&
		categoryDiversity >= p.MinCategoryDiversity
}

// DefaultPolicy 与 configs/config.yaml 的缺省值一致。
func DefaultPolicy() CountPolicy {
	return CountPolicy{MinBuyVotes: 5, MinAvgConviction: 0.5, MinCategoryDiversity: 3}
}

// Aggregator 把一批 persona 票聚合成 ConsensusResult。无状态。
type Aggregator struct {
	policy ThresholdPolicy
}

func NewAggregator(policy ThresholdPolicy) *Aggregator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Aggregator{policy: policy}
}

// Aggregate advisory 票不参与任何计数，仅透传。
func (a *Aggregator) Aggregate(symbol string, votes []PersonaVote, advisory *AdvisoryVote) ConsensusResult {
	res := ConsensusResult{
		Symbol:       symbol,
		Votes:        votes,
		AdvisoryVote: advisory,
	}

	convictionSum := 0.0
	scored := 0
	buyCategories := map[Category]bool{}
	for _, v := range votes {
		switch v.Action {
		case ActionBuy:
			res.BuyCount++
			buyCategories[v.Category] = true
		case ActionSell:
			res.SellCount++
		case ActionHold:
			res.HoldCount++
		case ActionAbstain:
			res.AbstainCount++
		}
		if v.Action != ActionAbstain {
			convictionSum += v.Conviction
			scored++
		}
	}
	if scored > 0 {
		res.AvgConviction = convictionSum / float64(scored)
	}
	res.CategoryDiversity = len(buyCategories)
	res.PassesThreshold = a.policy.Passes(res.BuyCount, res.AvgConviction, res.CategoryDiversity)
	return res
}
