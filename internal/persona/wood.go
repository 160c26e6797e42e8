package persona

import (
	"fmt"

	"roundtable/internal/decision"
	"roundtable/internal/market"
	"roundtable/internal/pkg/numutil"
)

// Wood 创新评估。产出非约束性的 ADVISORY 票，只随共识结果透传，
// 不进入任何计数。评分是增长动能与市场情绪的粗粒度合成。
type Wood struct {
	name string
}

func NewWood() *Wood { return &Wood{name: "Wood"} }

func (p *Wood) Assess(snap market.Snapshot) decision.AdvisoryVote {
	growth := numutil.Clamp01(snap.RevenueGrowthYoY / 50)
	earnings := numutil.Clamp01(snap.EarningsGrowthYoY / 50)
	sentiment := numutil.Clamp01((snap.Sentiment + 1) / 2)
	score := numutil.Round4(0.5*growth + 0.3*earnings + 0.2*sentiment)

	assessment := "limited disruption evidence"
	switch {
	case score >= 0.7:
		assessment = "high disruption potential: growth compounding with supportive sentiment"
	case score >= 0.4:
		assessment = "moderate disruption potential: growth present but not exceptional"
	}

	return decision.AdvisoryVote{
		PersonaName:          p.name,
		Action:               decision.ActionAdvisory,
		InnovationScore:      score,
		DisruptionAssessment: fmt.Sprintf("%s (revenue growth %.1f%%, earnings growth %.1f%%)", assessment, snap.RevenueGrowthYoY, snap.EarningsGrowthYoY),
		Category:             decision.CategoryInnovation,
	}
}
