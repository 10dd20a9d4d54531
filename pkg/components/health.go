package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌人和 Boss
type HealthComponent struct {
	Current int // 当前生命值
	Max     int // 最大生命值
}

// Fraction 返回 [0,1] 的血量比例（用于血条）
func (h *HealthComponent) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
