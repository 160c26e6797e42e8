package decision

import "strings"

// NormalizeAction 统一动作名称，兼容中英韩同义词。
// 无法识别时返回空串，由调用方决定默认行为。
func NormalizeAction(a string) Action {
	switch strings.ToUpper(strings.TrimSpace(a)) {
	case "BUY", "LONG", "매수":
		return ActionBuy
	case "SELL", "SHORT", "매도":
		return ActionSell
	case "HOLD", "WAIT", "NEUTRAL", "보유", "관망":
		return ActionHold
	case "ABSTAIN", "기권":
		return ActionAbstain
	case "ADVISORY":
		return ActionAdvisory
	default:
		return ""
	}
}

// ScreeningAction 判断是否为筛选 persona 的合法动作。
func ScreeningAction(a Action) bool {
	switch a {
	case ActionBuy, ActionSell, ActionHold, ActionAbstain:
		return true
	default:
		return false
	}
}
