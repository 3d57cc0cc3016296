package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/models"
)

func tx(typ, category string, amount int64) models.Transaction {
	return models.Transaction{Label: "x", Type: typ, Category: category, Amount: amount}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx(models.TipoIngreso, "varios", 100000),
		tx(models.TipoGasto, "comida", 15000),
		tx(models.TipoGasto, "vivienda", 25000),
	})
	assert.Equal(t, int64(100000), s.Income)
	assert.Equal(t, int64(40000), s.Expense)
	assert.Equal(t, int64(60000), s.Balance)
	assert.Equal(t, int64(60), s.SavingsRate)
}

func TestSummarize_SavingsRateRounding(t *testing.T) {
	cases := []struct {
		name            string
		income, expense int64
		want            int64
	}{
		{"no income", 0, 500, 0},
		{"round down", 3, 2, 33},
		{"half rounds up", 8, 7, 13},
		{"negative half rounds toward +inf", 8, 9, -12},
		{"deficit", 100, 250, -150},
		{"no expense", 100, 0, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize([]models.Transaction{
				tx(models.TipoIngreso, "varios", tc.income),
				tx(models.TipoGasto, "varios", tc.expense),
			})
			assert.Equal(t, tc.want, s.SavingsRate)
		})
	}
}

func TestSummarize_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	ids := []string{"comida", "vivienda", "transporte", "compras", "salud", "varios", models.CategorySavings}
	for i := 0; i < 200; i++ {
		var txs []models.Transaction
		for j := 0; j < r.Intn(30); j++ {
			typ := models.TipoGasto
			if r.Intn(2) == 0 {
				typ = models.TipoIngreso
			}
			txs = append(txs, tx(typ, ids[r.Intn(len(ids))], r.Int63n(1_000_000)))
		}

		s := Summarize(txs)
		require.Equal(t, s.Income-s.Expense, s.Balance)
		require.GreaterOrEqual(t, s.Income, int64(0))
		require.GreaterOrEqual(t, s.Expense, int64(0))
		require.LessOrEqual(t, s.SavingsRate, int64(100))

		var sum int64
		for _, c := range Breakdown(txs) {
			require.Positive(t, c.Value)
			sum += c.Value
		}
		require.LessOrEqual(t, sum, s.Expense)
	}
}

func TestBreakdown(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TipoGasto, "transporte", 2000),
		tx(models.TipoGasto, "comida", 3500),
		tx(models.TipoGasto, "comida", 1500),
		tx(models.TipoIngreso, "comida", 9999),
	}
	b := Breakdown(txs)
	require.Len(t, b, 2)
	// 保持类别定义的顺序，而不是按金额排序
	assert.Equal(t, "comida", b[0].ID)
	assert.Equal(t, int64(5000), b[0].Value)
	assert.Equal(t, "transporte", b[1].ID)
	assert.Equal(t, "#a855f7", b[1].Color)

	var sum int64
	for _, c := range b {
		sum += c.Value
	}
	assert.Equal(t, Summarize(txs).Expense, sum)
}

func TestBreakdown_SavingsDepositNotCategorized(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TipoGasto, "comida", 1000),
		tx(models.TipoGasto, models.CategorySavings, 3000),
	}
	b := Breakdown(txs)
	require.Len(t, b, 1)
	assert.Equal(t, int64(1000), b[0].Value)
	assert.Less(t, b[0].Value, Summarize(txs).Expense)
}

func TestCategoryMap(t *testing.T) {
	m := CategoryMap([]models.Transaction{
		tx(models.TipoGasto, "comida", 1000),
		tx(models.TipoGasto, "salud", 3000),
	})
	require.Len(t, m, len(models.Categories))
	assert.Equal(t, int64(25), m[0].Percent)
	assert.Equal(t, int64(75), m[4].Percent)
	assert.Equal(t, int64(0), m[5].Percent)

	empty := CategoryMap(nil)
	for _, c := range empty {
		assert.Zero(t, c.Percent)
	}
}

func TestDailyAverageAndRunway(t *testing.T) {
	assert.Equal(t, int64(4000), DailyAverage(40000, 10))
	assert.Equal(t, int64(3333), DailyAverage(10000, 3))
	assert.Equal(t, int64(0), DailyAverage(10000, 0))

	days, bounded := Runway(60000, 40000, 10)
	assert.True(t, bounded)
	assert.Equal(t, int64(15), days)

	_, bounded = Runway(60000, 0, 10)
	assert.False(t, bounded)

	days, bounded = Runway(-100, 300, 1)
	assert.True(t, bounded)
	assert.Equal(t, int64(-1), days)
}

func TestGoalPercent(t *testing.T) {
	assert.Equal(t, int64(100), GoalPercent(models.Goal{Target: 10000, Current: 12000}))
	assert.Equal(t, int64(25), GoalPercent(models.Goal{Target: 10000, Current: 2500}))
	assert.Equal(t, int64(0), GoalPercent(models.Goal{Target: 0, Current: 2500}))
	assert.Equal(t, int64(0), GoalPercent(models.Goal{Target: 100, Current: -5}))
}

func TestAdjustGoal(t *testing.T) {
	assert.Equal(t, int64(12000), AdjustGoal(0, 12000, false))
	assert.Equal(t, int64(0), AdjustGoal(3000, 5000, true))
	assert.Equal(t, int64(1000), AdjustGoal(3000, 2000, true))

	r := rand.New(rand.NewSource(7))
	var current int64
	for i := 0; i < 1000; i++ {
		current = GoalAdjustment{Amount: r.Int63n(10000), Withdrawal: r.Intn(2) == 0}.Apply(current)
		require.GreaterOrEqual(t, current, int64(0))
	}
}

func TestAdvise(t *testing.T) {
	ok := Advise(Summary{Income: 100000, Expense: 40000, Balance: 60000, SavingsRate: 60}, nil)
	assert.True(t, ok.Healthy)
	assert.Equal(t, int64(18000), ok.Suggested)
	assert.Contains(t, ok.Message, "$60.000")
	assert.Contains(t, ok.Message, "60%")

	breakdown := Breakdown([]models.Transaction{
		tx(models.TipoGasto, "compras", 100),
		tx(models.TipoGasto, "comida", 10),
	})
	alert := Advise(Summary{Income: 0, Expense: 110, Balance: -110}, breakdown)
	assert.False(t, alert.Healthy)
	// 第一个非零类别（按定义顺序）
	assert.Contains(t, alert.Message, `"Comida"`)

	fallback := Advise(Summary{Balance: -1}, nil)
	assert.Contains(t, fallback.Message, `"Varios"`)
}

func TestMonthRange(t *testing.T) {
	loc := time.UTC
	from, to := MonthRange(time.Date(2024, 2, 15, 13, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, loc), to)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), ShiftMonth(time.Date(2024, 1, 31, 0, 0, 0, 0, loc), 1))
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, loc), ShiftMonth(time.Date(2024, 1, 15, 0, 0, 0, 0, loc), -1))

	m, err := ParseMonth("2024-03", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03", FormatMonth(m))

	_, err = ParseMonth("03/2024", loc)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "1.234.567", FormatAmountInput("12345a67"))
	assert.Equal(t, "3.500", FormatAmountInput("$3500"))
	assert.Equal(t, "999", FormatAmountInput("999"))
	assert.Equal(t, "", FormatAmountInput("abc"))

	assert.Equal(t, int64(3500), ParseAmount("3.500"))
	assert.Equal(t, int64(1500000), ParseAmount("1.500.000"))
	assert.Equal(t, int64(12), ParseAmount("12abc"))
	assert.Equal(t, int64(0), ParseAmount(""))
	assert.Equal(t, int64(0), ParseAmount("0"))
	assert.Equal(t, int64(0), ParseAmount("abc"))
	assert.Equal(t, int64(0), ParseAmount("-5"))

	assert.Equal(t, "$3.500", FormatCLP(3500))
	assert.Equal(t, "-$3.500", FormatCLP(-3500))
	assert.Equal(t, "$0", FormatCLP(0))
	assert.Equal(t, "$100.000", FormatCLP(100000))
}
