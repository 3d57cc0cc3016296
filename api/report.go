package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"vault/ledger"
)

// MonthlyReporter 发送月度报告
type MonthlyReporter interface {
	Send(ctx context.Context, anchor time.Time) (*ledger.MonthlyReport, error)
}

// ReportHandler 月度报告
type ReportHandler struct {
	reporter MonthlyReporter
	dash     *ledger.Dashboard
	loc      *time.Location
}

// NewReportHandler 创建报告处理器
func NewReportHandler(reporter MonthlyReporter, dash *ledger.Dashboard, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReportHandler{reporter: reporter, dash: dash, loc: loc}
}

// SendMonthly 立即发送月度报告
// @Summary 发送月度报告
// @Description 立即生成指定月份的报告，通过邮件发送并附带 Excel 报表
// @Tags 报告
// @Produce json
// @Param month query string false "月份 (2024-01)，默认为看板当前月份"
// @Success 200 {object} Response{data=ledger.Summary} "发送成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "发送失败"
// @Router /api/v1/reports/monthly [post]
func (h *ReportHandler) SendMonthly(c *gin.Context) {
	anchor := h.dash.Month()
	if s := c.Query("month"); s != "" {
		m, err := ledger.ParseMonth(s, h.loc)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		anchor = m
	}

	report, err := h.reporter.Send(c.Request.Context(), anchor)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "发送月度报告失败"))
		return
	}
	SuccessWithMessage(c, "报告已发送", report.Summary)
}
