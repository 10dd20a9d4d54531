package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒左上角与 PositionComponent 重合，用于 AABB 检测（子弹与敌人、玩家与道具）
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
