// Package event 提供同步的游戏事件分发
//
// 模拟层通过 Dispatcher 发布事件，音效、指标、日志等订阅者据此响应，
// 模拟层本身不依赖任何订阅者。
package event

// EventType 事件类型
type EventType string

// Event 一次事件
type Event struct {
	Type EventType
	Data interface{} // 载荷，具体类型见 types.go
}

// Listener 事件订阅者
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc 函数形式的订阅者
type ListenerFunc func(event Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// SubscriptionID 订阅句柄，用于取消订阅
type SubscriptionID uint64

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// Dispatcher 事件分发器
//
// 分发是同步的：Dispatch 返回时所有订阅者都已处理完毕。
// 不是并发安全的，只应在游戏主循环中使用。
type Dispatcher struct {
	nextID    SubscriptionID
	listeners map[EventType][]subscription
	wildcard  []subscription
}

// NewDispatcher 创建新的分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		nextID:    1,
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	id := d.nextID
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return id
}

// SubscribeFunc Subscribe 的函数版本
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) SubscriptionID {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// SubscribeAll 订阅所有事件（日志、指标）
func (d *Dispatcher) SubscribeAll(listener Listener) SubscriptionID {
	id := d.nextID
	d.nextID++
	d.wildcard = append(d.wildcard, subscription{id: id, listener: listener})
	return id
}

// Unsubscribe 取消订阅，未知 ID 忽略
func (d *Dispatcher) Unsubscribe(id SubscriptionID) {
	for t, subs := range d.listeners {
		if idx := indexOf(subs, id); idx >= 0 {
			d.listeners[t] = append(subs[:idx:idx], subs[idx+1:]...)
			return
		}
	}
	if idx := indexOf(d.wildcard, id); idx >= 0 {
		d.wildcard = append(d.wildcard[:idx:idx], d.wildcard[idx+1:]...)
	}
}

func indexOf(subs []subscription, id SubscriptionID) int {
	for i, s := range subs {
		if s.id == id {
			return i
		}
	}
	return -1
}

// Dispatch 按订阅顺序通知订阅者，先类型订阅者后通配订阅者
//
// 订阅者在回调中修改订阅关系不影响本次分发
func (d *Dispatcher) Dispatch(event Event) {
	if subs, exists := d.listeners[event.Type]; exists {
		snapshot := append([]subscription(nil), subs...)
		for _, s := range snapshot {
			s.listener.OnEvent(event)
		}
	}
	if len(d.wildcard) > 0 {
		snapshot := append([]subscription(nil), d.wildcard...)
		for _, s := range snapshot {
			s.listener.OnEvent(event)
		}
	}
}

// Publish 便捷方法：构造并分发事件
// nil 分发器上调用是安全的（测试中常见）
func (d *Dispatcher) Publish(eventType EventType, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(Event{Type: eventType, Data: data})
}
