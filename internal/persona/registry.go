package persona

import "roundtable/internal/cycle"

// DefaultSet 按固定顺序构建全部十个筛选 persona。
// Soros 依赖周期检测与论点推导，其余均为纯快照函数。
func DefaultSet(detector *cycle.Detector, builder *cycle.Builder, history cycle.HistoryProvider) []Persona {
	return []Persona{
		NewGraham(),
		NewBuffett(),
		NewLynch(),
		NewFisher(),
		NewMunger(),
		NewTempleton(),
		NewLivermore(),
		NewDalio(),
		NewSoros(detector, builder, history),
		NewSimons(),
	}
}
