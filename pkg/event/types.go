package event

import "github.com/decker502/galaxy-defender/pkg/types"

const (
	PlayerShot       EventType = "PlayerShot"       // 玩家开火
	EnemyHit         EventType = "EnemyHit"         // 敌人或 Boss 被击中但未死亡
	EnemyDestroyed   EventType = "EnemyDestroyed"   // 敌人被击毁
	PlayerDamaged    EventType = "PlayerDamaged"    // 玩家扣血
	ShieldAbsorbed   EventType = "ShieldAbsorbed"   // 护盾抵挡了一次伤害
	PowerUpCollected EventType = "PowerUpCollected" // 拾取道具
	BossWarning      EventType = "BossWarning"      // Boss 来袭警告开始
	BossSpawned      EventType = "BossSpawned"
	BossStateChanged EventType = "BossStateChanged"
	BossDying        EventType = "BossDying"
	BossDefeated     EventType = "BossDefeated"
	ScoreChanged     EventType = "ScoreChanged"
	CoinsChanged     EventType = "CoinsChanged"
	WaveAdvanced     EventType = "WaveAdvanced"
	PhaseChanged     EventType = "PhaseChanged"
	UpgradePurchased EventType = "UpgradePurchased"
	GameOver         EventType = "GameOver"
)

// ShotData PlayerShot 载荷
type ShotData struct {
	Bullets int // 本次发射的子弹数（三连发为 3）
}

// EnemyDestroyedData EnemyDestroyed 载荷
type EnemyDestroyedData struct {
	Variant types.EnemyVariant
	X, Y    float64 // 中心点
	Score   int
	Coins   int
}

// HitData EnemyHit 载荷
type HitData struct {
	Boss      bool
	Remaining int
}

// DamageData PlayerDamaged 载荷
type DamageData struct {
	Amount    int
	Remaining int
}

// PowerUpData PowerUpCollected 载荷
type PowerUpData struct {
	Type types.PowerUpType
}

// BossData Boss 相关事件载荷
type BossData struct {
	Wave  int
	HP    int
	State types.BossState
}

// ValueData 数值变化载荷（分数、金币、波次）
type ValueData struct {
	Value int
	Delta int
}

// PhaseData PhaseChanged 载荷
type PhaseData struct {
	From types.Phase
	To   types.Phase
}

// UpgradeData UpgradePurchased 载荷
type UpgradeData struct {
	Kind  string
	Level int
	Cost  int
}

// GameOverData GameOver 载荷
type GameOverData struct {
	Score     int
	Wave      int
	HighScore int
	NewRecord bool
}
