package decision

import "fmt"

// 中文说明：
// 投票契约校验。坏数据在各组件内部已降级成保守结果，
// 走到这里仍不合法的票属于 persona 实现错误，必须快速失败。

// ValidateVote 校验筛选票的契约。
func ValidateVote(v PersonaVote) error {
	if v.PersonaName == "" {
		return fmt.Errorf("vote missing persona name")
	}
	if !ScreeningAction(v.Action) {
		return fmt.Errorf("persona %s: illegal action %q", v.PersonaName, v.Action)
	}
	if v.Conviction < 0 || v.Conviction > 1 {
		return fmt.Errorf("persona %s: conviction %.4f out of [0,1]", v.PersonaName, v.Conviction)
	}
	if v.CriteriaMet == nil {
		return fmt.Errorf("persona %s: nil criteria map", v.PersonaName)
	}
	if v.Category == "" {
		return fmt.Errorf("persona %s: missing category", v.PersonaName)
	}
	return nil
}

// ValidateAdvisory 校验创新评估票。
func ValidateAdvisory(v AdvisoryVote) error {
	if v.Action != ActionAdvisory {
		return fmt.Errorf("advisory vote from %s carries action %q", v.PersonaName, v.Action)
	}
	if v.InnovationScore < 0 || v.InnovationScore > 1 {
		return fmt.Errorf("advisory vote from %s: innovation score %.4f out of [0,1]", v.PersonaName, v.InnovationScore)
	}
	return nil
}
