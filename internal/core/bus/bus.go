// Package bus 进程内事件总线。
// listing/order 服务发布，websocket feed 等订阅方消费。
package bus

import (
	"sync"
	"time"
)

const (
	TopicListingCreated = "listing.created"
	TopicOrderStatus    = "order.status"
)

type Event struct {
	Topic   string      `json:"topic"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload"`
}

type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

func New() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe 返回事件通道和退订函数；通道带缓冲，消费慢会丢事件而不是阻塞发布方
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(topic string, payload interface{}) {
	ev := Event{Topic: topic, At: time.Now(), Payload: payload}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default: // 满了就丢
		}
	}
}
