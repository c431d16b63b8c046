package product

import (
	"context"
	"sync"
)

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

func (t MovementType) Valid() bool { return t == MovementIn || t == MovementOut }

// Movement is one entry of the stock audit log. Entries are never mutated.
type Movement struct {
	ID          int          `json:"id"`
	ProductID   int          `json:"productId"`
	ProductName string       `json:"productName"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Reason      string       `json:"reason"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Timestamp   int64        `json:"timestamp"`
}

// MovementRequest payload to record a manual stock movement.
// swagger:model MovementRequest
type MovementRequest struct {
	ProductID int          `json:"productId" example:"1"`
	Type      MovementType `json:"type"      example:"in"`
	Quantity  int          `json:"quantity"  example:"12"`
	Reason    string       `json:"reason"    example:"supplier delivery"`
}

// MovementLog is an append-only, lock-guarded list of movements.
type MovementLog struct {
	mu    sync.RWMutex
	items []Movement
}

func NewMovementLog() *MovementLog { return &MovementLog{} }

// Append assigns the next sequential ID and stores m.
func (l *MovementLog) Append(ctx context.Context, m Movement) Movement {
	l.mu.Lock()
	defer l.mu.Unlock()

	m.ID = len(l.items) + 1
	l.items = append(l.items, m)
	return m
}

func (l *MovementLog) List(ctx context.Context) []Movement {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Movement, len(l.items))
	copy(out, l.items)
	return out
}
