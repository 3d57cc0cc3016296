package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"vault/events"
	"vault/logger"
	"vault/models"
)

// NoticeTTL 提示消息自动消失的时间
const NoticeTTL = 3 * time.Second

// 提示消息
const (
	NoticeCreated   = "Registro exitoso"
	NoticeWithdrawn = "Fondos retirados"
	NoticeDeleted   = "Registro eliminado"
	NoticeGoal      = "Nueva meta establecida"
)

// 储蓄类账目的描述前缀
const (
	depositPrefix    = "✨ Ahorro: "
	withdrawalPrefix = "📤 Retiro: "
)

// TransactionInput 新增账目的输入
type TransactionInput struct {
	Label      string `json:"concepto" example:"Café"`
	Amount     string `json:"monto" example:"3.500"` // 带千位分隔符的整数金额
	Type       string `json:"tipo" example:"Gasto"`  // Gasto / Ingreso / Ahorro
	Category   string `json:"categoria" example:"comida"`
	GoalID     string `json:"meta_destino"` // 仅 Ahorro 使用，为空时使用当前选中的目标
	Withdrawal bool   `json:"retiro"`       // 仅 Ahorro 使用，true 表示从目标取出
}

// GoalInput 新建储蓄目标的输入
type GoalInput struct {
	Name   string `json:"nombre" example:"Viaje a Japón"`
	Target string `json:"objetivo" example:"1.500.000"`
	Color  string `json:"color" example:"#10b981"`
}

// Option Dashboard 可选配置
type Option func(*Dashboard)

// WithClock 替换时间来源
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithPublisher 设置事件发布
func WithPublisher(p events.Publisher) Option {
	return func(d *Dashboard) { d.pub = p }
}

// WithLogger 设置日志
func WithLogger(l *logger.Logger) Option {
	return func(d *Dashboard) { d.log = l }
}

// WithNoticeTTL 设置提示消息的显示时长
func WithNoticeTTL(ttl time.Duration) Option {
	return func(d *Dashboard) { d.noticeTTL = ttl }
}

// Dashboard 单用户的看板会话：当前月份的账目、目标列表和界面状态
type Dashboard struct {
	store     Store
	pub       events.Publisher
	log       *logger.Logger
	now       func() time.Time
	noticeTTL time.Duration

	mu           sync.Mutex
	month        time.Time
	transactions []models.Transaction
	goals        []models.Goal
	selectedGoal string
	view         View
	search       string
	notice       string
	noticeSeq    uint64
	loading      bool

	// 最近一次发出的查询编号，只接受与之相同的响应
	txSeq   uint64
	goalSeq uint64
}

// NewDashboard 创建看板，月份为当前月
func NewDashboard(store Store, opts ...Option) *Dashboard {
	d := &Dashboard{
		store:     store,
		pub:       events.Nop{},
		log:       logger.New("ledger"),
		now:       time.Now,
		noticeTTL: NoticeTTL,
		view:      ViewDashboard,
		loading:   true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.month = ShiftMonth(d.now(), 0)
	return d
}

// Month 当前查看的月份（第一天）
func (d *Dashboard) Month() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.month
}

// Transactions 当前月份的全部账目（未过滤）
func (d *Dashboard) Transactions() []models.Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.Transaction{}, d.transactions...)
}

// FetchTransactions 查询当前月份的账目。失败时保留原有数据；
// 若期间又发起了新的查询，本次结果直接丢弃
func (d *Dashboard) FetchTransactions(ctx context.Context) error {
	d.mu.Lock()
	d.txSeq++
	token := d.txSeq
	month := d.month
	d.loading = true
	d.mu.Unlock()

	from, to := MonthRange(month)
	txs, err := d.store.ListTransactions(ctx, from, to)

	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.txSeq {
		d.log.DebugContext(ctx, "stale transactions response discarded", "month", FormatMonth(month), "token", token)
		return nil
	}
	d.loading = false
	if err != nil {
		d.log.Failure(ctx, "fetch transactions failed", err, "month", FormatMonth(month))
		return fmt.Errorf("查询账目失败: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	d.transactions = txs
	return nil
}

// FetchGoals 查询全部目标；尚未选中目标时默认选中第一个
func (d *Dashboard) FetchGoals(ctx context.Context) error {
	d.mu.Lock()
	d.goalSeq++
	token := d.goalSeq
	d.mu.Unlock()

	goals, err := d.store.ListGoals(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.goalSeq {
		d.log.DebugContext(ctx, "stale goals response discarded", "token", token)
		return nil
	}
	if err != nil {
		d.log.Failure(ctx, "fetch goals failed", err)
		return fmt.Errorf("查询目标失败: %w", err)
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	d.goals = goals
	if d.selectedGoal == "" && len(goals) > 0 {
		d.selectedGoal = goals[0].ID
	}
	return nil
}

// Refresh 并发刷新账目和目标，两者互不影响
func (d *Dashboard) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.FetchTransactions(ctx) })
	g.Go(func() error { return d.FetchGoals(ctx) })
	return g.Wait()
}

// AddTransaction 新增账目。Ahorro 类型折算为 Gasto（存入）或 Ingreso（取出），
// 目标金额的调整与账目写入在同一个存储调用中完成
func (d *Dashboard) AddTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	amount := ParseAmount(in.Amount)
	label := strings.TrimSpace(in.Label)
	if amount <= 0 || label == "" {
		return nil, fmt.Errorf("%w: concepto y monto son obligatorios", ErrInvalidInput)
	}

	tx := models.Transaction{Label: label, Amount: amount, Type: in.Type, Category: in.Category}
	var adj *GoalAdjustment
	savings := false

	switch in.Type {
	case models.TipoAhorro:
		savings = true
		tx.Category = models.CategorySavings
		if in.Withdrawal {
			tx.Type = models.TipoIngreso
			tx.Label = withdrawalPrefix + label
		} else {
			tx.Type = models.TipoGasto
			tx.Label = depositPrefix + label
		}
		goalID := in.GoalID
		if goalID == "" {
			d.mu.Lock()
			goalID = d.selectedGoal
			d.mu.Unlock()
		}
		if goalID != "" {
			adj = &GoalAdjustment{GoalID: goalID, Amount: amount, Withdrawal: in.Withdrawal}
		}
	case models.TipoGasto, models.TipoIngreso, "":
		if tx.Type == "" {
			tx.Type = models.TipoGasto
		}
		if tx.Category == "" {
			tx.Category = models.CategoryDefault
		}
		if !models.IsStaticCategory(tx.Category) {
			return nil, fmt.Errorf("%w: categoría desconocida %q", ErrInvalidInput, tx.Category)
		}
	default:
		return nil, fmt.Errorf("%w: tipo desconocido %q", ErrInvalidInput, in.Type)
	}

	if err := d.store.InsertTransaction(ctx, &tx, adj); err != nil {
		d.log.Failure(ctx, "insert transaction failed", err, "tipo", tx.Type, "monto", tx.Amount)
		return nil, fmt.Errorf("新增账目失败: %w", err)
	}
	d.log.InfoContext(ctx, "transaction created", "id", tx.ID, "tipo", tx.Type, "monto", tx.Amount, "categoria", tx.Category)

	created := events.New(events.KindTransactionCreated, tx.ID)
	created.Amount = tx.Amount
	d.publish(ctx, created)

	if adj != nil {
		adjusted := events.New(events.KindGoalAdjusted, adj.GoalID)
		adjusted.Amount = tx.Amount
		if adj.Withdrawal {
			adjusted.Amount = -tx.Amount
		}
		adjusted.GoalID = adj.GoalID
		d.publish(ctx, adjusted)
		_ = d.FetchGoals(ctx)
	}
	_ = d.FetchTransactions(ctx)

	if savings && in.Withdrawal {
		d.setNotice(NoticeWithdrawn)
	} else {
		d.setNotice(NoticeCreated)
	}
	return &tx, nil
}

// CreateGoal 新建储蓄目标，初始金额为 0
func (d *Dashboard) CreateGoal(ctx context.Context, in GoalInput) (*models.Goal, error) {
	name := strings.TrimSpace(in.Name)
	target := ParseAmount(in.Target)
	if name == "" || target <= 0 {
		return nil, fmt.Errorf("%w: nombre y objetivo son obligatorios", ErrInvalidInput)
	}
	color := in.Color
	if color == "" {
		color = models.DefaultGoalColor
	}
	if !models.IsGoalColor(color) {
		return nil, fmt.Errorf("%w: color no permitido %q", ErrInvalidInput, color)
	}

	goal := models.Goal{Name: name, Target: target, Current: 0, Color: color}
	if err := d.store.InsertGoal(ctx, &goal); err != nil {
		d.log.Failure(ctx, "insert goal failed", err, "nombre", name)
		return nil, fmt.Errorf("新建目标失败: %w", err)
	}
	d.log.InfoContext(ctx, "goal created", "id", goal.ID, "objetivo", goal.Target)

	e := events.New(events.KindGoalCreated, goal.ID)
	e.Amount = goal.Target
	d.publish(ctx, e)

	_ = d.FetchGoals(ctx)
	d.setNotice(NoticeGoal)
	return &goal, nil
}

// DeleteTransaction 按 ID 删除账目，无确认、不可撤销
func (d *Dashboard) DeleteTransaction(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id vacío", ErrInvalidInput)
	}
	if err := d.store.DeleteTransaction(ctx, id); err != nil {
		d.log.Failure(ctx, "delete transaction failed", err, "id", id)
		return fmt.Errorf("删除账目失败: %w", err)
	}
	d.log.InfoContext(ctx, "transaction deleted", "id", id)
	d.publish(ctx, events.New(events.KindTransactionDeleted, id))

	_ = d.FetchTransactions(ctx)
	d.setNotice(NoticeDeleted)
	return nil
}

// ChangeMonth 前后切换月份并刷新
func (d *Dashboard) ChangeMonth(ctx context.Context, offset int) error {
	d.mu.Lock()
	d.month = ShiftMonth(d.month, offset)
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// SetMonth 切换到 anchor 所在月份并刷新
func (d *Dashboard) SetMonth(ctx context.Context, anchor time.Time) error {
	d.mu.Lock()
	d.month = ShiftMonth(anchor, 0)
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// SetView 切换视图，任意视图之间可直接切换
func (d *Dashboard) SetView(v View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: vista desconocida %q", ErrInvalidInput, v)
	}
	d.mu.Lock()
	d.view = v
	d.mu.Unlock()
	return nil
}

// SetSearch 设置历史记录的搜索关键字
func (d *Dashboard) SetSearch(q string) {
	d.mu.Lock()
	d.search = q
	d.mu.Unlock()
}

// SelectGoal 选择储蓄类账目默认使用的目标
func (d *Dashboard) SelectGoal(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, g := range d.goals {
		if g.ID == id {
			d.selectedGoal = id
			return nil
		}
	}
	return fmt.Errorf("%w: meta %q", ErrNotFound, id)
}

// setNotice 设置提示，noticeTTL 后自动清除；新提示会覆盖旧提示的计时
func (d *Dashboard) setNotice(msg string) {
	d.mu.Lock()
	d.noticeSeq++
	seq := d.noticeSeq
	d.notice = msg
	d.mu.Unlock()

	time.AfterFunc(d.noticeTTL, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.noticeSeq == seq {
			d.notice = ""
		}
	})
}

func (d *Dashboard) publish(ctx context.Context, e events.Event) {
	if err := d.pub.Publish(ctx, e); err != nil {
		d.log.WarnContext(ctx, "publish event failed", "kind", e.Kind, "id", e.ID, "error", err)
	}
}
