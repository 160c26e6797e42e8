package cycle

// Narrative 单个阶段的叙事模板。外部叙事生成方（如 LLM）可整表替换，
// 数值推导不受影响。
type Narrative struct {
	Perception   string
	Reality      string
	FeedbackLoop string
	Prediction   string
	Triggers     []string
}

// NarrativeTable 六个阶段的叙事与失效触发。进程启动时构建一次，只读注入。
type NarrativeTable struct {
	stages map[Stage]Narrative
	common []string
}

// DefaultNarratives 返回内置模板表。
func DefaultNarratives() NarrativeTable {
	return NarrativeTable{
		stages: map[Stage]Narrative{
			StageInception: {
				Perception:   "The market has not yet noticed the emerging trend; coverage is thin and positioning light.",
				Reality:      "Fundamentals are quietly shifting while price barely reflects it.",
				FeedbackLoop: "Early buyers validate the thesis, slowly drawing attention to the name.",
				Prediction:   "If the gap between perception and reality persists, a self-reinforcing advance can begin.",
				Triggers: []string{
					"Fundamental shift reverses before the market notices",
					"A stronger competing narrative absorbs the flows",
				},
			},
			StageAcceleration: {
				Perception:   "A growing crowd accepts the trend as real and extrapolates it forward.",
				Reality:      "Fundamentals still support the move but are beginning to lag the price.",
				FeedbackLoop: "Rising prices attract buyers whose demand pushes prices further, strengthening the bias.",
				Prediction:   "The trend should extend until the first serious test of the prevailing bias.",
				Triggers: []string{
					"Momentum stalls for more than two consecutive weeks",
					"Leadership narrows while the index advances",
				},
			},
			StageTesting: {
				Perception:   "Doubt appears; the consensus is challenged by a correction or adverse news.",
				Reality:      "Fundamentals remain intact, which is precisely what the test will reveal.",
				FeedbackLoop: "A successful test flushes weak holders and re-arms the trend with stronger hands.",
				Prediction:   "Surviving the test typically precedes the steepest leg of the advance.",
				Triggers: []string{
					"Price fails to reclaim the pre-test level",
					"Volume dries up on the recovery attempt",
				},
			},
			StageEuphoria: {
				Perception:   "Belief has hardened into certainty; the story is treated as self-evident.",
				Reality:      "Price has detached from fundamentals; the gap is at its widest.",
				FeedbackLoop: "Buying begets buying on narrative alone; the loop now runs on air.",
				Prediction:   "Unsustainable exuberance; the moment of truth approaches.",
				Triggers: []string{
					"Climactic volume without further price progress",
					"Marginal buyers are fully invested",
				},
			},
			StageTwilight: {
				Perception:   "The crowd still believes, but price action has stopped confirming the story.",
				Reality:      "Fundamentals have rolled over; insiders are distributing.",
				FeedbackLoop: "Hesitation breeds hesitation; the reinforcing loop weakens and prepares to invert.",
				Prediction:   "Distribution precedes decline; the reflexive loop is reversing.",
				Triggers: []string{
					"A failed rally on shrinking volume",
					"The narrative requires ever larger claims to hold attention",
				},
			},
			StageCollapse: {
				Perception:   "Disillusionment spreads; the old story is abandoned wholesale.",
				Reality:      "Forced selling drives price below any reasonable estimate of value.",
				FeedbackLoop: "Falling prices force liquidation which forces prices lower still.",
				Prediction:   "The bust overshoots just as the boom did; seeds of the next cycle are planted here.",
				Triggers: []string{
					"Capitulation volume with no follow-through selling",
					"Valuation reaches distress levels while fundamentals stabilize",
				},
			},
		},
		common: []string{
			"Thesis conviction drops below the entry bar",
			"Asymmetry ratio falls under 3:1",
			"Stage classification advances past the entry window",
		},
	}
}

// For 返回指定阶段的叙事；Triggers 为阶段触发加公共触发的副本。
func (t NarrativeTable) For(stage Stage) Narrative {
	n, ok := t.stages[stage]
	if !ok {
		n = t.stages[StageInception]
	}
	triggers := make([]string, 0, len(n.Triggers)+len(t.common))
	triggers = append(triggers, n.Triggers...)
	triggers = append(triggers, t.common...)
	n.Triggers = triggers
	return n
}
