package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"vault/config"
	"vault/ledger"
	"vault/logger"
)

// ReportSender 月度报告的发送方
type ReportSender interface {
	Enabled() bool
	SendMonthlyReport(toEmail string, report *ledger.MonthlyReport, attachment *Attachment) error
}

// Reporter 生成并发送月度报告
type Reporter struct {
	store     ledger.Store
	mail      ReportSender
	recipient string
	loc       *time.Location
	now       func() time.Time
	log       *logger.Logger
}

// NewReporter 创建月度报告
func NewReporter(store ledger.Store, mail ReportSender, recipient string, loc *time.Location) *Reporter {
	if loc == nil {
		loc = time.Local
	}
	return &Reporter{
		store:     store,
		mail:      mail,
		recipient: recipient,
		loc:       loc,
		now:       time.Now,
		log:       logger.New("report"),
	}
}

// Send 发送 anchor 所在月份的报告
func (r *Reporter) Send(ctx context.Context, anchor time.Time) (*ledger.MonthlyReport, error) {
	if !r.mail.Enabled() {
		return nil, fmt.Errorf("邮件服务未启用")
	}

	log := r.log.With("mes", ledger.FormatMonth(anchor.In(r.loc)))
	report, err := ledger.LoadMonthlyReport(ctx, r.store, anchor.In(r.loc))
	if err != nil {
		log.Failure(ctx, "load monthly report failed", err)
		return nil, err
	}

	f, err := BuildWorkbook(report, r.loc)
	if err != nil {
		return nil, fmt.Errorf("生成 Excel 失败: %w", err)
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("生成 Excel 失败: %w", err)
	}

	attachment := &Attachment{Name: fmt.Sprintf("vault_%s.xlsx", report.Label), Data: buf.Bytes()}
	if err := r.mail.SendMonthlyReport(r.recipient, report, attachment); err != nil {
		log.Failure(ctx, "send monthly report failed", err)
		return nil, err
	}
	log.InfoContext(ctx, "monthly report sent", "movimientos", len(report.Transactions))
	return report, nil
}

// SendPreviousMonth 发送上个月的报告，由定时任务在每月初调用
func (r *Reporter) SendPreviousMonth(ctx context.Context) error {
	_, err := r.Send(ctx, ledger.ShiftMonth(r.now().In(r.loc), -1))
	return err
}

// StartScheduler 按配置启动月度报告定时任务，未启用时返回 nil
func StartScheduler(cfg config.ReportConfig, r *Reporter) (*cron.Cron, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	c := cron.New(cron.WithLocation(r.loc))
	_, err := c.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := r.SendPreviousMonth(ctx); err != nil {
			r.log.Failure(ctx, "scheduled monthly report failed", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("无效的报告计划 %q: %w", cfg.Schedule, err)
	}
	c.Start()
	r.log.Info("monthly report scheduled", "schedule", cfg.Schedule)
	return c, nil
}
