package ledger

import (
	"github.com/shopspring/decimal"

	"vault/models"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Summary 月度汇总
type Summary struct {
	Income      int64 `json:"ingresos"`
	Expense     int64 `json:"gastos"`
	Balance     int64 `json:"balance"`
	SavingsRate int64 `json:"tasa_ahorro"` // 百分比，可为负
}

// CategorySlice 单个类别的支出
type CategorySlice struct {
	models.Category
	Value   int64 `json:"valor"`
	Percent int64 `json:"porcentaje"`
}

// Summarize 汇总收入、支出、结余和储蓄率
func Summarize(txs []models.Transaction) Summary {
	var s Summary
	for _, t := range txs {
		switch {
		case t.IsIncome():
			s.Income += t.Amount
		case t.IsExpense():
			s.Expense += t.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	if s.Income > 0 {
		rate := decimal.NewFromInt(s.Balance).Mul(hundred).Div(decimal.NewFromInt(s.Income))
		s.SavingsRate = roundHalfUp(rate)
	}
	return s
}

// Breakdown 按固定类别统计支出，只保留非零类别，顺序与类别定义一致
func Breakdown(txs []models.Transaction) []CategorySlice {
	all := CategoryMap(txs)
	out := make([]CategorySlice, 0, len(all))
	for _, c := range all {
		if c.Value > 0 {
			out = append(out, c)
		}
	}
	return out
}

// CategoryMap 六个类别全部返回，附带占总支出的百分比
func CategoryMap(txs []models.Transaction) []CategorySlice {
	totals := make(map[string]int64, len(models.Categories))
	var expense int64
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		expense += t.Amount
		totals[t.Category] += t.Amount
	}

	out := make([]CategorySlice, 0, len(models.Categories))
	for _, c := range models.Categories {
		slice := CategorySlice{Category: c, Value: totals[c.ID]}
		if expense > 0 {
			slice.Percent = roundHalfUp(decimal.NewFromInt(slice.Value).Mul(hundred).Div(decimal.NewFromInt(expense)))
		}
		out = append(out, slice)
	}
	return out
}

// DailyAverage 本月日均支出，day 为当前是几号
func DailyAverage(expense int64, day int) int64 {
	if day <= 0 {
		return 0
	}
	return roundHalfUp(decimal.NewFromInt(expense).Div(decimal.NewFromInt(int64(day))))
}

// Runway 按日均支出计算结余还能维持的天数；没有支出时 bounded 为 false（∞）
func Runway(balance, expense int64, day int) (days int64, bounded bool) {
	if expense <= 0 || day <= 0 {
		return 0, false
	}
	// balance / (expense/day) = balance*day/expense
	d := decimal.NewFromInt(balance).Mul(decimal.NewFromInt(int64(day))).Div(decimal.NewFromInt(expense))
	return d.Floor().IntPart(), true
}

// GoalPercent 目标完成百分比，限制在 [0, 100]
func GoalPercent(g models.Goal) int64 {
	if g.Target <= 0 {
		return 0
	}
	p := roundHalfUp(decimal.NewFromInt(g.Current).Mul(hundred).Div(decimal.NewFromInt(g.Target)))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// AdjustGoal 存入或取出后的目标金额，不小于 0
func AdjustGoal(current, amount int64, withdrawal bool) int64 {
	next := current + amount
	if withdrawal {
		next = current - amount
	}
	if next < 0 {
		return 0
	}
	return next
}

// roundHalfUp 四舍五入，.5 向正无穷方向
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}
