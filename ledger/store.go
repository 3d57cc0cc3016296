package ledger

import (
	"context"
	"time"

	"vault/models"
)

// GoalAdjustment 储蓄类账目对目标金额的调整
type GoalAdjustment struct {
	GoalID     string
	Amount     int64
	Withdrawal bool
}

// Apply 计算调整后的金额，结果不小于 0
func (a GoalAdjustment) Apply(current int64) int64 {
	return AdjustGoal(current, a.Amount, a.Withdrawal)
}

// Store 远端数据存储，两张表：movimientos 和 metas
type Store interface {
	// ListTransactions 查询 created_at 在 [from, to] 内的账目，按时间倒序
	ListTransactions(ctx context.Context, from, to time.Time) ([]models.Transaction, error)
	// ListGoals 查询全部目标，按创建时间正序
	ListGoals(ctx context.Context) ([]models.Goal, error)
	// InsertTransaction 写入账目；adj 不为空时在同一事务内调整目标金额
	InsertTransaction(ctx context.Context, tx *models.Transaction, adj *GoalAdjustment) error
	// InsertGoal 写入目标
	InsertGoal(ctx context.Context, goal *models.Goal) error
	// DeleteTransaction 按 ID 删除账目，不存在返回 ErrNotFound
	DeleteTransaction(ctx context.Context, id string) error
}
