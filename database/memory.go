package database

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"vault/ledger"
	"vault/models"
)

// MemoryStore 进程内存储，用于演示和测试
type MemoryStore struct {
	mu    sync.RWMutex
	txs   map[string]models.Transaction
	goals []models.Goal
	now   func() time.Time
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		txs: make(map[string]models.Transaction),
		now: time.Now,
	}
}

func (s *MemoryStore) ListTransactions(_ context.Context, from, to time.Time) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, 0)
	for _, t := range s.txs {
		if !t.CreatedAt.Before(from) && !t.CreatedAt.After(to) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) ListGoals(context.Context) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append(make([]models.Goal, 0, len(s.goals)), s.goals...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) InsertTransaction(_ context.Context, tx *models.Transaction, adj *ledger.GoalAdjustment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	if adj != nil {
		idx = s.goalIndex(adj.GoalID)
		if idx < 0 {
			return fmt.Errorf("%w: meta %q", ledger.ErrNotFound, adj.GoalID)
		}
	}

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.now()
	}
	s.txs[tx.ID] = *tx

	if idx >= 0 {
		s.goals[idx].Current = adj.Apply(s.goals[idx].Current)
	}
	return nil
}

func (s *MemoryStore) InsertGoal(_ context.Context, goal *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = s.now()
	}
	s.goals = append(s.goals, *goal)
	return nil
}

func (s *MemoryStore) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.txs[id]; !ok {
		return fmt.Errorf("%w: movimiento %q", ledger.ErrNotFound, id)
	}
	delete(s.txs, id)
	return nil
}

func (s *MemoryStore) goalIndex(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

// Ping 内存存储始终可用
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
