package api

import (
	"github.com/gin-gonic/gin"

	"vault/ledger"
	"vault/models"
)

// GoalHandler 储蓄目标
type GoalHandler struct {
	dash *ledger.Dashboard
}

// NewGoalHandler 创建目标处理器
func NewGoalHandler(dash *ledger.Dashboard) *GoalHandler {
	return &GoalHandler{dash: dash}
}

// List 全部目标及完成百分比
// @Summary 获取储蓄目标
// @Description 按创建时间正序返回全部目标，百分比范围 0-100
// @Tags 储蓄目标
// @Produce json
// @Success 200 {object} Response{data=[]ledger.GoalView} "获取成功"
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	Success(c, h.dash.View().Goals)
}

// Create 新建目标
// @Summary 新建储蓄目标
// @Description 新建目标，初始金额为 0；颜色为空时使用默认颜色
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param request body ledger.GoalInput true "目标"
// @Success 200 {object} Response{data=models.Goal} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "保存失败"
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var in ledger.GoalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}
	goal, err := h.dash.CreateGoal(c.Request.Context(), in)
	if err != nil {
		Fail(c, err, "保存失败")
		return
	}
	SuccessWithMessage(c, ledger.NoticeGoal, goal)
}

// Colors 可选颜色
// @Summary 获取目标可选颜色
// @Tags 储蓄目标
// @Produce json
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/goals/colors [get]
func (h *GoalHandler) Colors(c *gin.Context) {
	Success(c, models.GoalColors)
}
