package config

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/decker502/galaxy-defender/pkg/types"
	"github.com/decker502/galaxy-defender/pkg/utils"
	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var profilesFS embed.FS

// DefaultProfile 默认调参档案
const DefaultProfile = "defender"

// Profile 一套完整的调参数据
//
// 三套内置档案（classic / arcade / defender）彼此独立，数值不做统一。
type Profile struct {
	Name      string          `yaml:"name"`
	Title     string          `yaml:"title"`
	Player    PlayerConfig    `yaml:"player"`
	Bullets   BulletConfig    `yaml:"bullets"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Waves     WaveConfig      `yaml:"waves"`
	Boss      BossConfig      `yaml:"boss"`
	PowerUps  PowerUpConfig   `yaml:"powerUps"`
	Particles ParticleConfig  `yaml:"particles"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Economy   EconomyConfig   `yaml:"economy"`
}

// PlayerConfig 玩家移动、射击与受伤参数
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottomMargin"` // 玩家顶边距离画面底部的距离
	Accel        float64 `yaml:"accel"`        // 每帧按键加速度
	Damping      float64 `yaml:"damping"`      // 每帧速度衰减系数 (0,1)
	MaxHealth    int     `yaml:"maxHealth"`
	HUD          string  `yaml:"hud"` // "lives" 或 "bar"
	InvulnFrames int     `yaml:"invulnFrames"`

	FireCooldownMs     float64 `yaml:"fireCooldownMs"`
	RapidCooldownMs    float64 `yaml:"rapidCooldownMs"`
	MinCooldownMs      float64 `yaml:"minCooldownMs"`
	CooldownPerLevelMs float64 `yaml:"cooldownPerLevelMs"`
	AccelPerLevel      float64 `yaml:"accelPerLevel"`
	HealthPerLevel     int     `yaml:"healthPerLevel"`

	EffectFrames   int     `yaml:"effectFrames"`   // 限时道具持续帧数
	TripleSpreadVX float64 `yaml:"tripleSpreadVX"` // 三连发两侧子弹的横向速度
}

// BulletConfig 子弹参数
type BulletConfig struct {
	PlayerWidth    float64 `yaml:"playerWidth"`
	PlayerHeight   float64 `yaml:"playerHeight"`
	PlayerSpeed    float64 `yaml:"playerSpeed"`
	PlayerDamage   int     `yaml:"playerDamage"`
	DamagePerLevel int     `yaml:"damagePerLevel"`
	EnemyWidth     float64 `yaml:"enemyWidth"`
	EnemyHeight    float64 `yaml:"enemyHeight"`
	EnemySpeed     float64 `yaml:"enemySpeed"`
	EnemyDamage    int     `yaml:"enemyDamage"`
	DespawnMargin  float64 `yaml:"despawnMargin"` // 超出画面多少像素后移除
}

// EnemyVariantConfig 单个敌人变体的数值
type EnemyVariantConfig struct {
	Variant     string  `yaml:"variant"`
	Weight      float64 `yaml:"weight"`
	Speed       float64 `yaml:"speed"`
	SpeedJitter float64 `yaml:"speedJitter"`
	HP          int     `yaml:"hp"`
	Score       int     `yaml:"score"`
	Coins       int     `yaml:"coins"`
	Color       string  `yaml:"color"`

	// SINE / ZIGZAG
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`

	// DIVER
	DiveY          float64 `yaml:"diveY"`
	DiveMultiplier float64 `yaml:"diveMultiplier"`

	// SCOUT
	StrafeSpeed  float64 `yaml:"strafeSpeed"`
	StrafeFrames int     `yaml:"strafeFrames"`

	// 射击间隔帧数，0 表示不射击
	ShootFrames int `yaml:"shootFrames"`

	kind types.EnemyVariant
}

// Kind 返回解析后的变体标签（ParseProfile 之后有效）
func (v *EnemyVariantConfig) Kind() types.EnemyVariant {
	return v.kind
}

// EnemiesConfig 敌人公共参数
type EnemiesConfig struct {
	Width         float64              `yaml:"width"`
	Height        float64              `yaml:"height"`
	ContactDamage int                  `yaml:"contactDamage"`
	HPPerWave     float64              `yaml:"hpPerWave"`
	Variants      []EnemyVariantConfig `yaml:"variants"`
}

// Variant 按标签查找变体配置
func (e *EnemiesConfig) Variant(kind types.EnemyVariant) (*EnemyVariantConfig, bool) {
	for i := range e.Variants {
		if e.Variants[i].kind == kind {
			return &e.Variants[i], true
		}
	}
	return nil, false
}

// Weights 返回按顺序排列的权重，用于加权随机
func (e *EnemiesConfig) Weights() []float64 {
	w := make([]float64, len(e.Variants))
	for i, v := range e.Variants {
		w[i] = v.Weight
	}
	return w
}

// SpawnConfig 刷怪间隔与难度曲线
//
// interval = max(minIntervalMs, baseIntervalMs / difficulty)
// difficulty = 1 + elapsedSec*timeFactor + score*scoreFactor + (wave-1)*waveFactor
type SpawnConfig struct {
	BaseIntervalMs float64 `yaml:"baseIntervalMs"`
	MinIntervalMs  float64 `yaml:"minIntervalMs"`
	TimeFactor     float64 `yaml:"timeFactor"`
	ScoreFactor    float64 `yaml:"scoreFactor"`
	WaveFactor     float64 `yaml:"waveFactor"`
}

// Boss 出场门槛类型
const (
	GateDefeats = "defeats"
	GateScore   = "score"
)

// WaveConfig 波次与 Boss 门槛
type WaveConfig struct {
	Gate              string `yaml:"gate"`           // "defeats" 或 "score"
	DefeatsPerWave    int    `yaml:"defeatsPerWave"` // 击败数达到 wave*defeatsPerWave 时出 Boss
	ScoreGate         int    `yaml:"scoreGate"`      // 分数达到 wave*scoreGate 时出 Boss
	Shop              bool   `yaml:"shop"`           // Boss 结束后是否进入商店
	BossWarningFrames int    `yaml:"bossWarningFrames"`
}

// BossConfig Boss 状态机参数
type BossConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	BaseHP     int     `yaml:"baseHP"`
	HPPerWave  int     `yaml:"hpPerWave"`
	EntryY     float64 `yaml:"entryY"`
	EntrySpeed float64 `yaml:"entrySpeed"`

	SpiralFrames      int     `yaml:"spiralFrames"`
	SpiralAngleStep   float64 `yaml:"spiralAngleStep"`
	SpiralAmplitude   float64 `yaml:"spiralAmplitude"`
	SpiralShotEvery   int     `yaml:"spiralShotEvery"`
	SpiralBullets     int     `yaml:"spiralBullets"`
	SpiralBulletSpeed float64 `yaml:"spiralBulletSpeed"`
	SpiralRotateStep  float64 `yaml:"spiralRotateStep"`

	HomingFrames    int     `yaml:"homingFrames"`
	HomingFreq      float64 `yaml:"homingFreq"`
	HomingAmplitude float64 `yaml:"homingAmplitude"`
	HomingJitter    float64 `yaml:"homingJitter"`
	HomingShotEvery int     `yaml:"homingShotEvery"`
	AimedSpeed      float64 `yaml:"aimedSpeed"`

	ChargeHoldFrames int     `yaml:"chargeHoldFrames"`
	ChargeAccel      float64 `yaml:"chargeAccel"`
	ChargeMaxSpeed   float64 `yaml:"chargeMaxSpeed"`

	DeathFrames        int `yaml:"deathFrames"`
	DeathParticleEvery int `yaml:"deathParticleEvery"`

	ContactDamage int    `yaml:"contactDamage"`
	Score         int    `yaml:"score"`
	Coins         int    `yaml:"coins"`
	DropsPowerUp  bool   `yaml:"dropsPowerUp"`
	Color         string `yaml:"color"`
}

// PowerUpConfig 道具参数
type PowerUpConfig struct {
	Types      []string `yaml:"types"`
	DropChance float64  `yaml:"dropChance"`
	FallSpeed  float64  `yaml:"fallSpeed"`
	Size       float64  `yaml:"size"`
	HealAmount int      `yaml:"healAmount"`

	kinds []types.PowerUpType
}

// Kinds 返回解析后的可掉落道具类型
func (p *PowerUpConfig) Kinds() []types.PowerUpType {
	return p.kinds
}

// ParticleConfig 粒子参数
type ParticleConfig struct {
	Decay              float64 `yaml:"decay"`
	ExplosionCount     int     `yaml:"explosionCount"`
	BossExplosionCount int     `yaml:"bossExplosionCount"`
	HitSparkCount      int     `yaml:"hitSparkCount"`
	MaxSpeed           float64 `yaml:"maxSpeed"`
}

// StarfieldConfig 星空背景参数
type StarfieldConfig struct {
	Count          int     `yaml:"count"`
	Layers         int     `yaml:"layers"`
	BaseSpeed      float64 `yaml:"baseSpeed"`
	BaseBrightness float64 `yaml:"baseBrightness"`
}

// EconomyConfig 商店价格
// 下一级价格 = 基础价格 * (当前等级 + 1)
type EconomyConfig struct {
	DamageCost    int `yaml:"damageCost"`
	FireRateCost  int `yaml:"fireRateCost"`
	SpeedCost     int `yaml:"speedCost"`
	MaxHealthCost int `yaml:"maxHealthCost"`
	MaxLevel      int `yaml:"maxLevel"`
}

// ProfileNames 返回内置档案名（已排序）
func ProfileNames() []string {
	entries, err := profilesFS.ReadDir("profiles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadProfile 加载内置档案
func LoadProfile(name string) (*Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	data, err := profilesFS.ReadFile(path.Join("profiles", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return ParseProfile(data)
}

// LoadProfileFile 从磁盘加载自定义档案
func LoadProfileFile(filePath string) (*Profile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile 解析并校验 YAML 档案
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", p.Name, err)
	}
	return &p, nil
}

// validate 校验数值并解析枚举字段
func (p *Profile) validate() error {
	if p.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	pl := &p.Player
	if pl.Width <= 0 || pl.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if pl.Accel <= 0 {
		return fmt.Errorf("player.accel must be positive")
	}
	if pl.Damping <= 0 || pl.Damping >= 1 {
		return fmt.Errorf("player.damping must be in (0,1), got %v", pl.Damping)
	}
	if pl.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive")
	}
	if pl.HUD != "lives" && pl.HUD != "bar" {
		return fmt.Errorf("player.hud must be \"lives\" or \"bar\", got %q", pl.HUD)
	}
	if pl.FireCooldownMs <= 0 || pl.MinCooldownMs < 0 {
		return fmt.Errorf("player fire cooldown must be positive")
	}

	if p.Bullets.PlayerSpeed <= 0 || p.Bullets.PlayerDamage <= 0 {
		return fmt.Errorf("bullets.playerSpeed and bullets.playerDamage must be positive")
	}

	if p.Enemies.Width <= 0 || p.Enemies.Height <= 0 {
		return fmt.Errorf("enemy size must be positive")
	}
	if len(p.Enemies.Variants) == 0 {
		return fmt.Errorf("enemies.variants cannot be empty")
	}
	totalWeight := 0.0
	for i := range p.Enemies.Variants {
		v := &p.Enemies.Variants[i]
		kind, err := types.ParseEnemyVariant(v.Variant)
		if err != nil {
			return fmt.Errorf("enemies.variants[%d]: %w", i, err)
		}
		v.kind = kind
		if v.HP <= 0 {
			return fmt.Errorf("enemies.variants[%d] (%s): hp must be positive", i, v.Variant)
		}
		if v.Weight < 0 {
			return fmt.Errorf("enemies.variants[%d] (%s): weight cannot be negative", i, v.Variant)
		}
		if _, err := utils.ParseColor(v.Color); err != nil {
			return fmt.Errorf("enemies.variants[%d] (%s): %w", i, v.Variant, err)
		}
		if kind == types.EnemyDiver && v.DiveMultiplier <= 0 {
			return fmt.Errorf("enemies.variants[%d] (DIVER): diveMultiplier must be positive", i)
		}
		if kind == types.EnemyScout && v.StrafeFrames <= 0 {
			return fmt.Errorf("enemies.variants[%d] (SCOUT): strafeFrames must be positive", i)
		}
		totalWeight += v.Weight
	}
	if totalWeight <= 0 {
		return fmt.Errorf("enemy weights must sum to a positive value")
	}

	if p.Spawn.BaseIntervalMs <= 0 || p.Spawn.MinIntervalMs <= 0 {
		return fmt.Errorf("spawn intervals must be positive")
	}

	switch p.Waves.Gate {
	case GateDefeats:
		if p.Waves.DefeatsPerWave <= 0 {
			return fmt.Errorf("waves.defeatsPerWave must be positive for gate %q", GateDefeats)
		}
	case GateScore:
		if p.Waves.ScoreGate <= 0 {
			return fmt.Errorf("waves.scoreGate must be positive for gate %q", GateScore)
		}
	default:
		return fmt.Errorf("waves.gate must be %q or %q, got %q", GateDefeats, GateScore, p.Waves.Gate)
	}

	b := &p.Boss
	if b.Width <= 0 || b.Height <= 0 || b.BaseHP <= 0 {
		return fmt.Errorf("boss size and baseHP must be positive")
	}
	if b.EntrySpeed <= 0 || b.SpiralFrames <= 0 || b.HomingFrames <= 0 || b.DeathFrames <= 0 {
		return fmt.Errorf("boss state durations and entry speed must be positive")
	}
	if b.ChargeAccel <= 0 || b.ChargeMaxSpeed <= 0 {
		return fmt.Errorf("boss charge acceleration must be positive")
	}
	if b.ContactDamage <= p.Enemies.ContactDamage {
		return fmt.Errorf("boss.contactDamage (%d) must exceed enemies.contactDamage (%d)", b.ContactDamage, p.Enemies.ContactDamage)
	}
	if _, err := utils.ParseColor(b.Color); err != nil {
		return fmt.Errorf("boss.color: %w", err)
	}

	p.PowerUps.kinds = p.PowerUps.kinds[:0]
	for _, name := range p.PowerUps.Types {
		kind, err := types.ParsePowerUpType(name)
		if err != nil {
			return fmt.Errorf("powerUps.types: %w", err)
		}
		p.PowerUps.kinds = append(p.PowerUps.kinds, kind)
	}
	if p.PowerUps.DropChance < 0 || p.PowerUps.DropChance > 1 {
		return fmt.Errorf("powerUps.dropChance must be in [0,1]")
	}

	if p.Particles.Decay <= 0 {
		return fmt.Errorf("particles.decay must be positive")
	}
	if p.Starfield.Layers <= 0 || p.Starfield.Count < 0 {
		return fmt.Errorf("starfield.layers must be positive")
	}

	if p.Waves.Shop && p.Economy.MaxLevel <= 0 {
		return fmt.Errorf("economy.maxLevel must be positive when the shop is enabled")
	}

	return nil
}

// HasShop 是否启用商店与金币
func (p *Profile) HasShop() bool {
	return p.Waves.Shop
}
