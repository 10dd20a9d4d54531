package synth

import "github.com/decker502/galaxy-defender/pkg/event"

// Sink 音效输出端（ebiten 播放器或 beep speaker）
type Sink interface {
	Play(s Sound)
}

// ForEvent 返回事件对应的音效
func ForEvent(e event.Event) (Sound, bool) {
	switch e.Type {
	case event.PlayerShot:
		return SoundShoot, true
	case event.EnemyHit:
		return SoundHit, true
	case event.EnemyDestroyed:
		return SoundExplosion, true
	case event.BossDefeated:
		return SoundBossExplosion, true
	case event.PowerUpCollected:
		return SoundPowerUp, true
	case event.BossWarning:
		return SoundBossWarning, true
	case event.BossSpawned:
		return SoundBossSpawn, true
	case event.PlayerDamaged:
		return SoundPlayerHurt, true
	case event.ShieldAbsorbed:
		return SoundShield, true
	case event.UpgradePurchased:
		return SoundPurchase, true
	case event.GameOver:
		return SoundGameOver, true
	}
	return 0, false
}

// Attach 把事件总线上的游戏事件转成音效播放
func Attach(bus *event.Dispatcher, sink Sink) event.SubscriptionID {
	return bus.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		if s, ok := ForEvent(e); ok {
			sink.Play(s)
		}
	}))
}
