package sim

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/decker502/galaxy-defender/pkg/ecs"
	"github.com/decker502/galaxy-defender/pkg/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/decker502/galaxy-defender/pkg/sim"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics 把游戏事件转成 OTel 指标
//
// 使用全局 MeterProvider，未安装 SDK 时全部为 no-op
type Metrics struct {
	destroyed metric.Int64Counter
	shots     metric.Int64Counter
	bosses    metric.Int64Counter
	damage    metric.Int64Counter
	live      metric.Int64ObservableGauge

	// 由模拟线程写入，指标采集线程读取
	liveCount atomic.Int64

	bus  *event.Dispatcher
	subs []event.SubscriptionID
	reg  metric.Registration
}

// NewMetrics 创建指标并订阅事件总线
func NewMetrics(bus *event.Dispatcher, em *ecs.EntityManager) (*Metrics, error) {
	m := &Metrics{bus: bus}
	mt := meter()

	var err error
	m.destroyed, err = mt.Int64Counter(
		"galaxy.enemies.destroyed",
		metric.WithDescription("Enemies destroyed by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}

	m.shots, err = mt.Int64Counter(
		"galaxy.shots.fired",
		metric.WithDescription("Player bullets fired"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	m.bosses, err = mt.Int64Counter(
		"galaxy.bosses.defeated",
		metric.WithDescription("Bosses defeated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating bosses counter: %w", err)
	}

	m.damage, err = mt.Int64Counter(
		"galaxy.player.damage",
		metric.WithDescription("Damage taken by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}

	m.live, err = mt.Int64ObservableGauge(
		"galaxy.entities.live",
		metric.WithDescription("Live entities at the end of the last step"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating live entities gauge: %w", err)
	}

	m.reg, err = mt.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(m.live, m.liveCount.Load())
			return nil
		},
		m.live,
	)
	if err != nil {
		return nil, fmt.Errorf("registering live entities callback: %w", err)
	}

	m.subscribe()
	m.liveCount.Store(int64(em.EntityCount()))
	return m, nil
}

func (m *Metrics) subscribe() {
	bg := context.Background()
	m.subs = append(m.subs,
		m.bus.SubscribeFunc(event.EnemyDestroyed, func(e event.Event) {
			d, _ := e.Data.(event.EnemyDestroyedData)
			m.destroyed.Add(bg, 1, metric.WithAttributes(attribute.String("variant", d.Variant.String())))
		}),
		m.bus.SubscribeFunc(event.PlayerShot, func(e event.Event) {
			d, _ := e.Data.(event.ShotData)
			m.shots.Add(bg, int64(d.Bullets))
		}),
		m.bus.SubscribeFunc(event.BossDefeated, func(e event.Event) {
			m.bosses.Add(bg, 1)
		}),
		m.bus.SubscribeFunc(event.PlayerDamaged, func(e event.Event) {
			d, _ := e.Data.(event.DamageData)
			m.damage.Add(bg, int64(d.Amount))
		}),
	)
}

// ObserveEntities 记录一帧结束时的实体数量
func (m *Metrics) ObserveEntities(n int) {
	m.liveCount.Store(int64(n))
}

// Close 取消订阅并注销回调
func (m *Metrics) Close() error {
	for _, id := range m.subs {
		m.bus.Unsubscribe(id)
	}
	m.subs = nil
	if m.reg != nil {
		return m.reg.Unregister()
	}
	return nil
}
