package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"vault/events"
	"vault/models"
)

// fakeStore 内存实现，支持注入错误
type fakeStore struct {
	mu      sync.Mutex
	txs     []models.Transaction
	goals   []models.Goal
	seq     int
	now     time.Time
	inserts int
	listErr error
	goalErr error
	saveErr error
}

func newFakeStore(now time.Time) *fakeStore {
	return &fakeStore{now: now}
}

func (s *fakeStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *fakeStore) ListTransactions(_ context.Context, from, to time.Time) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Transaction
	for _, t := range s.txs {
		if !t.CreatedAt.Before(from) && !t.CreatedAt.After(to) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) ListGoals(context.Context) ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.goalErr != nil {
		return nil, s.goalErr
	}
	return append([]models.Goal(nil), s.goals...), nil
}

func (s *fakeStore) InsertTransaction(_ context.Context, tx *models.Transaction, adj *GoalAdjustment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	idx := -1
	if adj != nil {
		for i := range s.goals {
			if s.goals[i].ID == adj.GoalID {
				idx = i
			}
		}
		if idx < 0 {
			return ErrNotFound
		}
	}
	tx.ID = s.nextID("tx")
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.now
	}
	s.txs = append(s.txs, *tx)
	s.inserts++
	if idx >= 0 {
		s.goals[idx].Current = adj.Apply(s.goals[idx].Current)
	}
	return nil
}

func (s *fakeStore) InsertGoal(_ context.Context, g *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	g.ID = s.nextID("goal")
	g.CreatedAt = s.now
	s.goals = append(s.goals, *g)
	return nil
}

func (s *fakeStore) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.txs {
		if t.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *fakeStore) goal(id string) models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g
		}
	}
	return models.Goal{}
}

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Kind)
	}
	return out
}

var errBoom = errors.New("boom")
