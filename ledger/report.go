package ledger

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"vault/models"
)

// MonthlyReport 某个月份的完整数据，用于导出和月度邮件
type MonthlyReport struct {
	Month        time.Time            `json:"-"`
	Label        string               `json:"mes"`
	Summary      Summary              `json:"resumen"`
	Categories   []CategorySlice      `json:"mapa_gastos"`
	Goals        []GoalView           `json:"metas"`
	Transactions []models.Transaction `json:"movimientos"`
}

// LoadMonthlyReport 并发查询 anchor 所在月份的账目和全部目标
func LoadMonthlyReport(ctx context.Context, store Store, anchor time.Time) (*MonthlyReport, error) {
	from, to := MonthRange(anchor)

	var (
		txs   []models.Transaction
		goals []models.Goal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = store.ListTransactions(gctx, from, to)
		if err != nil {
			return fmt.Errorf("查询账目失败: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = store.ListGoals(gctx)
		if err != nil {
			return fmt.Errorf("查询目标失败: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if txs == nil {
		txs = []models.Transaction{}
	}
	return &MonthlyReport{
		Month:        from,
		Label:        FormatMonth(from),
		Summary:      Summarize(txs),
		Categories:   CategoryMap(txs),
		Goals:        GoalViews(goals, ""),
		Transactions: txs,
	}, nil
}
