package ledger

import (
	"strconv"
	"strings"

	"vault/models"
)

// View 界面视图
type View string

const (
	ViewDashboard View = "dashboard"
	ViewHistory   View = "history"
	ViewGoals     View = "goals"
	ViewAnalysis  View = "analysis"
)

// Valid 是否为已知视图
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewHistory, ViewGoals, ViewAnalysis:
		return true
	}
	return false
}

// recentLimit 看板上显示的最近账目条数
const recentLimit = 5

// GoalView 目标及其完成百分比
type GoalView struct {
	models.Goal
	Percent  int64 `json:"porcentaje"`
	Selected bool  `json:"seleccionada"`
}

// Analysis 分析页数据
type Analysis struct {
	DailyAverage int64 `json:"promedio_diario"`
	// RunwayDays 为 nil 表示没有支出（∞）
	RunwayDays  *int64          `json:"autonomia_dias"`
	Runway      string          `json:"autonomia"`
	Advice      Advice          `json:"consejo"`
	CategoryMap []CategorySlice `json:"mapa_gastos"`
}

// ViewModel 提供给展示层的全部派生数据
type ViewModel struct {
	Month          string               `json:"mes"`
	View           View                 `json:"vista"`
	Search         string               `json:"busqueda"`
	Notice         string               `json:"notificacion,omitempty"`
	Loading        bool                 `json:"cargando"`
	Summary        Summary              `json:"resumen"`
	Breakdown      []CategorySlice      `json:"desglose"`
	Recent         []models.Transaction `json:"recientes"`
	Transactions   []models.Transaction `json:"movimientos"`
	Goals          []GoalView           `json:"metas"`
	SelectedGoalID string               `json:"meta_destino"`
	Analysis       Analysis             `json:"analisis"`
}

// FilterTransactions 按描述过滤，不区分大小写；q 为空返回全部
func FilterTransactions(txs []models.Transaction, q string) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	q = strings.ToLower(q)
	for _, t := range txs {
		if strings.Contains(strings.ToLower(t.Label), q) {
			out = append(out, t)
		}
	}
	return out
}

// GoalViews 计算每个目标的百分比
func GoalViews(goals []models.Goal, selected string) []GoalView {
	out := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalView{Goal: g, Percent: GoalPercent(g), Selected: g.ID == selected})
	}
	return out
}

// View 返回当前状态的视图数据
func (d *Dashboard) View() ViewModel {
	d.mu.Lock()
	txs := append([]models.Transaction(nil), d.transactions...)
	goals := append([]models.Goal(nil), d.goals...)
	vm := ViewModel{
		Month:          FormatMonth(d.month),
		View:           d.view,
		Search:         d.search,
		Notice:         d.notice,
		Loading:        d.loading,
		SelectedGoalID: d.selectedGoal,
	}
	d.mu.Unlock()

	vm.Summary = Summarize(txs)
	vm.Breakdown = Breakdown(txs)
	vm.Recent = txs
	if len(vm.Recent) > recentLimit {
		vm.Recent = vm.Recent[:recentLimit]
	}
	if vm.Recent == nil {
		vm.Recent = []models.Transaction{}
	}
	vm.Transactions = FilterTransactions(txs, vm.Search)
	vm.Goals = GoalViews(goals, vm.SelectedGoalID)
	vm.Analysis = analyze(vm.Summary, txs, d.now().Day())
	return vm
}

func analyze(s Summary, txs []models.Transaction, day int) Analysis {
	a := Analysis{
		DailyAverage: DailyAverage(s.Expense, day),
		Runway:       "∞",
		Advice:       Advise(s, Breakdown(txs)),
		CategoryMap:  CategoryMap(txs),
	}
	if days, bounded := Runway(s.Balance, s.Expense, day); bounded {
		a.RunwayDays = &days
		a.Runway = strconv.FormatInt(days, 10)
	}
	return a
}
