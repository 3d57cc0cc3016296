package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vault/ledger"
	"vault/service"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store ledger.Store
	dash  *ledger.Dashboard
	loc   *time.Location
}

// NewExportHandler 创建导出处理器
func NewExportHandler(store ledger.Store, dash *ledger.Dashboard, loc *time.Location) *ExportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ExportHandler{store: store, dash: dash, loc: loc}
}

// month 解析 month 参数，未提供时使用看板当前月份
func (h *ExportHandler) month(c *gin.Context) (time.Time, error) {
	s := c.Query("month")
	if s == "" {
		return h.dash.Month(), nil
	}
	return ledger.ParseMonth(s, h.loc)
}

func (h *ExportHandler) load(c *gin.Context) (*ledger.MonthlyReport, bool) {
	anchor, err := h.month(c)
	if err != nil {
		BadRequest(c, err.Error())
		return nil, false
	}
	report, err := ledger.LoadMonthlyReport(c.Request.Context(), h.store, anchor)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return nil, false
	}
	return report, true
}

// ExportCSV 导出账目为 CSV
// @Summary 导出账目（CSV）
// @Description 导出指定月份的全部账目
// @Tags 导出
// @Produce text/csv
// @Param month query string false "月份 (2024-01)，默认为看板当前月份"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	report, ok := h.load(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM，Excel 打开时正确识别 UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "Concepto", "Monto", "Tipo", "Categoría", "Fecha"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	for _, tx := range report.Transactions {
		row := []string{
			tx.ID,
			tx.Label,
			strconv.FormatInt(tx.Amount, 10),
			tx.Type,
			service.CategoryName(tx.Category),
			tx.CreatedAt.In(h.loc).Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("movimientos_%s.csv", report.Label)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出月度报表为 Excel
// @Summary 导出月度报表（Excel）
// @Description 导出指定月份的账目明细、汇总、类别占比和目标进度
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "月份 (2024-01)，默认为看板当前月份"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "生成失败"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	report, ok := h.load(c)
	if !ok {
		return
	}

	f, err := service.BuildWorkbook(report, h.loc)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	filename := fmt.Sprintf("vault_%s.xlsx", report.Label)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
