// Package events 发布账目变更事件
package events

import (
	"context"
	"encoding/json"
	"time"
)

// 事件类型，同时作为 AMQP routing key
const (
	KindTransactionCreated = "movimiento.creado"
	KindTransactionDeleted = "movimiento.eliminado"
	KindGoalCreated        = "meta.creada"
	KindGoalAdjusted       = "meta.ajustada"
)

// Event 账目事件
type Event struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Amount    int64     `json:"monto,omitempty"`
	GoalID    string    `json:"meta_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// New 创建事件
func New(kind, id string) Event {
	return Event{Kind: kind, ID: id, Timestamp: time.Now()}
}

// ToJSON 序列化
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher 事件发布
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop 不发布任何事件
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                          { return nil }
