package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vault/ledger"
	"vault/models"
)

// Store 基于 gorm 的账目存储
type Store struct {
	db *gorm.DB
}

// NewStore 创建存储
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListTransactions 查询时间范围内的账目，两端都包含
func (s *Store) ListTransactions(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// ListGoals 查询全部目标
func (s *Store) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// InsertTransaction 写入账目，有目标调整时锁定目标行并在同一事务内更新
func (s *Store) InsertTransaction(ctx context.Context, tx *models.Transaction, adj *ledger.GoalAdjustment) error {
	return s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		var goal models.Goal
		if adj != nil {
			err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", adj.GoalID).
				First(&goal).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: meta %q", ledger.ErrNotFound, adj.GoalID)
			}
			if err != nil {
				return err
			}
		}

		if err := db.Create(tx).Error; err != nil {
			return err
		}

		if adj != nil {
			return db.Model(&models.Goal{}).
				Where("id = ?", goal.ID).
				Update("actual", adj.Apply(goal.Current)).Error
		}
		return nil
	})
}

// InsertGoal 写入目标
func (s *Store) InsertGoal(ctx context.Context, goal *models.Goal) error {
	return s.db.WithContext(ctx).Create(goal).Error
}

// DeleteTransaction 删除账目，没有命中任何行时返回 ErrNotFound
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: movimiento %q", ledger.ErrNotFound, id)
	}
	return nil
}

// Ping 检查数据库连接
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
