package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/galaxy-defender/pkg/components"
	"github.com/decker502/galaxy-defender/pkg/config"
	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/entities"
	"github.com/decker502/galaxy-defender/pkg/event"
	"github.com/decker502/galaxy-defender/pkg/game"
	"github.com/decker502/galaxy-defender/pkg/types"
)

// newTestContext 创建处于 PLAYING 阶段的测试上下文（800x600，固定种子）
func newTestContext(t *testing.T, profile string) *Context {
	t.Helper()
	p, err := config.LoadProfile(profile)
	if err != nil {
		t.Fatalf("LoadProfile(%q) failed: %v", profile, err)
	}
	bus := event.NewDispatcher()
	state := game.NewGameState(bus)
	state.SetPhase(types.PhasePlaying)
	return &Context{
		EM:      ecs.NewEntityManager(),
		State:   state,
		Profile: p,
		Field:   &Playfield{Width: 800, Height: 600},
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Bus:     bus,
	}
}

// addPlayer 创建玩家并返回其组件
func addPlayer(t *testing.T, ctx *Context) (ecs.EntityID, *components.PlayerComponent, *components.HealthComponent, *components.PositionComponent) {
	t.Helper()
	id := entities.NewPlayer(ctx.EM, ctx.Profile.Player, ctx.Field.Width, ctx.Field.Height, ctx.Profile.Player.MaxHealth)
	pc, _ := ecs.GetComponent[*components.PlayerComponent](ctx.EM, id)
	hp, _ := ecs.GetComponent[*components.HealthComponent](ctx.EM, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](ctx.EM, id)
	return id, pc, hp, pos
}

// recordEvents 记录总线上指定类型的事件
func recordEvents(bus *event.Dispatcher, kinds ...event.EventType) *[]event.Event {
	var got []event.Event
	for _, et := range kinds {
		bus.SubscribeFunc(et, func(e event.Event) {
			got = append(got, e)
		})
	}
	return &got
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
