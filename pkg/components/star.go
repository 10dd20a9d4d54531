package components

// StarComponent 背景星星
// 越靠前的层（Layer 越大）速度越快、越亮
type StarComponent struct {
	Layer      int
	Speed      float64
	Brightness float64 // 0~1
	Size       float64
}
