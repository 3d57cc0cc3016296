package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"vault/ledger"
)

// StateHandler 看板状态：月份、视图、搜索、选中目标
type StateHandler struct {
	dash *ledger.Dashboard
	loc  *time.Location
}

// NewStateHandler 创建状态处理器
func NewStateHandler(dash *ledger.Dashboard, loc *time.Location) *StateHandler {
	if loc == nil {
		loc = time.Local
	}
	return &StateHandler{dash: dash, loc: loc}
}

// MonthRequest 切换月份；month 优先，否则按 offset 前后移动
type MonthRequest struct {
	Month  string `json:"month" example:"2024-01"`
	Offset int    `json:"offset" example:"-1"`
}

// ViewRequest 切换视图
type ViewRequest struct {
	View string `json:"view" binding:"required" example:"analysis"`
}

// SearchRequest 历史记录搜索
type SearchRequest struct {
	Q string `json:"q" example:"uber"`
}

// SelectGoalRequest 选择储蓄目标
type SelectGoalRequest struct {
	GoalID string `json:"goal_id" binding:"required"`
}

// Get 获取看板数据
// @Summary 获取看板状态
// @Description 返回当前月份的汇总、类别分布、最近账目、目标进度和分析数据
// @Tags 看板
// @Produce json
// @Success 200 {object} Response{data=ledger.ViewModel} "获取成功"
// @Router /api/v1/state [get]
func (h *StateHandler) Get(c *gin.Context) {
	Success(c, h.dash.View())
}

// SetMonth 切换月份
// @Summary 切换月份
// @Description 按 month（2006-01）或 offset 切换月份，并重新加载账目和目标
// @Tags 看板
// @Accept json
// @Produce json
// @Param request body MonthRequest true "月份"
// @Success 200 {object} Response{data=ledger.ViewModel} "切换成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "加载失败"
// @Router /api/v1/state/month [put]
func (h *StateHandler) SetMonth(c *gin.Context) {
	var req MonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	var err error
	if req.Month != "" {
		var anchor time.Time
		anchor, err = ledger.ParseMonth(req.Month, h.loc)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		err = h.dash.SetMonth(c.Request.Context(), anchor)
	} else {
		err = h.dash.ChangeMonth(c.Request.Context(), req.Offset)
	}
	if err != nil {
		Fail(c, err, "加载数据失败")
		return
	}
	Success(c, h.dash.View())
}

// SetView 切换视图
// @Summary 切换视图
// @Description 在 dashboard / history / goals / analysis 之间切换
// @Tags 看板
// @Accept json
// @Produce json
// @Param request body ViewRequest true "视图"
// @Success 200 {object} Response{data=ledger.ViewModel} "切换成功"
// @Failure 400 {object} Response "未知视图"
// @Router /api/v1/state/view [put]
func (h *StateHandler) SetView(c *gin.Context) {
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}
	if err := h.dash.SetView(ledger.View(req.View)); err != nil {
		Fail(c, err, "切换视图失败")
		return
	}
	Success(c, h.dash.View())
}

// SetSearch 设置搜索关键字
// @Summary 搜索历史记录
// @Description 按描述过滤账目，不区分大小写，空字符串清除过滤
// @Tags 看板
// @Accept json
// @Produce json
// @Param request body SearchRequest true "关键字"
// @Success 200 {object} Response{data=ledger.ViewModel} "设置成功"
// @Router /api/v1/state/search [put]
func (h *StateHandler) SetSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}
	h.dash.SetSearch(req.Q)
	Success(c, h.dash.View())
}

// SelectGoal 选择储蓄目标
// @Summary 选择储蓄目标
// @Description 选择 Ahorro 类账目默认存入或取出的目标
// @Tags 看板
// @Accept json
// @Produce json
// @Param request body SelectGoalRequest true "目标"
// @Success 200 {object} Response{data=ledger.ViewModel} "选择成功"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/state/goal [put]
func (h *StateHandler) SelectGoal(c *gin.Context) {
	var req SelectGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}
	if err := h.dash.SelectGoal(req.GoalID); err != nil {
		Fail(c, err, "选择目标失败")
		return
	}
	Success(c, h.dash.View())
}

// Refresh 重新加载
// @Summary 重新加载
// @Description 并发重新加载当前月份账目和全部目标
// @Tags 看板
// @Produce json
// @Success 200 {object} Response{data=ledger.ViewModel} "加载成功"
// @Failure 500 {object} Response "加载失败"
// @Router /api/v1/state/refresh [post]
func (h *StateHandler) Refresh(c *gin.Context) {
	if err := h.dash.Refresh(c.Request.Context()); err != nil {
		Fail(c, err, "加载数据失败")
		return
	}
	Success(c, h.dash.View())
}
