package api

import (
	"github.com/gin-gonic/gin"

	"vault/ledger"
	"vault/models"
)

// TransactionHandler 账目
type TransactionHandler struct {
	dash *ledger.Dashboard
}

// NewTransactionHandler 创建账目处理器
func NewTransactionHandler(dash *ledger.Dashboard) *TransactionHandler {
	return &TransactionHandler{dash: dash}
}

// List 当前月份的账目
// @Summary 获取账目列表
// @Description 返回当前月份的账目（按时间倒序）；不传 q 时使用看板当前的搜索关键字
// @Tags 账目
// @Produce json
// @Param q query string false "描述关键字"
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	q, ok := c.GetQuery("q")
	if !ok {
		Success(c, h.dash.View().Transactions)
		return
	}
	Success(c, ledger.FilterTransactions(h.dash.Transactions(), q))
}

// Create 新增账目
// @Summary 新增账目
// @Description 新增收入、支出或储蓄（Ahorro）。储蓄存入记为支出，取出记为收入，并同步调整目标金额
// @Tags 账目
// @Accept json
// @Produce json
// @Param request body ledger.TransactionInput true "账目"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "目标不存在"
// @Failure 500 {object} Response "保存失败"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var in ledger.TransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}
	tx, err := h.dash.AddTransaction(c.Request.Context(), in)
	if err != nil {
		Fail(c, err, "保存失败")
		return
	}
	msg := ledger.NoticeCreated
	if in.Type == models.TipoAhorro && in.Withdrawal {
		msg = ledger.NoticeWithdrawn
	}
	SuccessWithMessage(c, msg, tx)
}

// Delete 删除账目
// @Summary 删除账目
// @Description 按 ID 删除账目，不可撤销
// @Tags 账目
// @Produce json
// @Param id path string true "账目ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "账目不存在"
// @Failure 500 {object} Response "删除失败"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.dash.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		Fail(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, ledger.NoticeDeleted, nil)
}
