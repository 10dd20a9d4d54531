package components

// PositionComponent 实体左上角的世界坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 每帧位移（像素/帧）
type VelocityComponent struct {
	VX float64
	VY float64
}
