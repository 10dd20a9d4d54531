package utils

// PickWeighted 按权重区间选择下标
//
// r 为 [0,1) 的均匀随机数；weights 为各候选项的权重（无需归一化）。
// 选择方式为累积阈值带：r*sum 落在哪个区间就返回哪个下标。
// 权重全部 <= 0 时返回 -1。
func PickWeighted(r float64, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	threshold := r * total
	acc := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = i
		if threshold < acc {
			return i
		}
	}
	// r 接近 1 时的浮点误差
	return last
}
