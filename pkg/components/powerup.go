package components

import "github.com/decker502/galaxy-defender/pkg/types"

// PowerUpComponent 下落的道具
type PowerUpComponent struct {
	Type types.PowerUpType
}
