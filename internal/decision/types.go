package decision

// 中文说明：
// 本文件定义 persona 投票与共识结果的通用数据结构，供 persona 实现、
// 解析器与聚合器使用。全部为值类型，产出后不再修改。

// Action 投票动作。十个筛选 persona 只会产出前四种，
// ADVISORY 仅用于非约束性的创新评估票。
type Action string

const (
	ActionBuy      Action = "BUY"
	ActionSell     Action = "SELL"
	ActionHold     Action = "HOLD"
	ActionAbstain  Action = "ABSTAIN"
	ActionAdvisory Action = "ADVISORY"
)

// Category persona 所属流派，参与共识的多样性计数。
type Category string

const (
	CategoryValue      Category = "VALUE"
	CategoryGrowth     Category = "GROWTH"
	CategoryMomentum   Category = "MOMENTUM"
	CategoryMacro      Category = "MACRO"
	CategoryQuant      Category = "QUANT"
	CategoryInnovation Category = "INNOVATION"
)

// PersonaVote 单个 persona 对单个快照的一次判定。
// Reasoning 必须点名通过/未通过的判据名，供审计与 LLM 升级决策使用。
type PersonaVote struct {
	PersonaName string          `json:"persona_name"`
	Action      Action          `json:"action"`
	Conviction  float64         `json:"conviction"` // [0,1]
	Reasoning   string          `json:"reasoning"`
	CriteriaMet map[string]bool `json:"criteria_met"`
	Category    Category        `json:"category"`
}

// AdvisoryVote 非约束性创新评估（Wood）。不参与共识计数，仅透传。
type AdvisoryVote struct {
	PersonaName          string   `json:"persona_name"`
	Action               Action   `json:"action"`           // 恒为 ADVISORY
	InnovationScore      float64  `json:"innovation_score"` // [0,1]
	DisruptionAssessment string   `json:"disruption_assessment"`
	Category             Category `json:"category"` // 恒为 INNOVATION
}

// ConsensusResult 一轮评估的聚合结果，交给外部执行方。
type ConsensusResult struct {
	Symbol       string        `json:"symbol"`
	Votes        []PersonaVote `json:"votes"`
	AdvisoryVote *AdvisoryVote `json:"advisory_vote,omitempty"`

	BuyCount     int `json:"buy_count"`
	SellCount    int `json:"sell_count"`
	HoldCount    int `json:"hold_count"`
	AbstainCount int `json:"abstain_count"`

	PassesThreshold   bool    `json:"passes_threshold"`
	AvgConviction     float64 `json:"avg_conviction"`
	CategoryDiversity int     `json:"category_diversity"`

	TraceID string `json:"trace_id,omitempty"`
}
