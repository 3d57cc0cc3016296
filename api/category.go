package api

import (
	"github.com/gin-gonic/gin"

	"vault/ledger"
	"vault/models"
)

// AnalysisHandler 分析页和类别
type AnalysisHandler struct {
	dash *ledger.Dashboard
}

// NewAnalysisHandler 创建分析处理器
func NewAnalysisHandler(dash *ledger.Dashboard) *AnalysisHandler {
	return &AnalysisHandler{dash: dash}
}

// AnalysisResponse 分析页返回
type AnalysisResponse struct {
	Month    string          `json:"mes" example:"2024-01"`
	Summary  ledger.Summary  `json:"resumen"`
	Analysis ledger.Analysis `json:"analisis"`
}

// Get 分析数据
// @Summary 获取财务分析
// @Description 返回当前月份的日均支出、可维持天数、建议和各类别占比
// @Tags 分析
// @Produce json
// @Success 200 {object} Response{data=AnalysisResponse} "获取成功"
// @Router /api/v1/analysis [get]
func (h *AnalysisHandler) Get(c *gin.Context) {
	vm := h.dash.View()
	Success(c, AnalysisResponse{
		Month:    vm.Month,
		Summary:  vm.Summary,
		Analysis: vm.Analysis,
	})
}

// Categories 固定支出类别
// @Summary 获取支出类别
// @Description 返回六个固定支出类别，顺序即展示顺序
// @Tags 分析
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *AnalysisHandler) Categories(c *gin.Context) {
	Success(c, models.Categories)
}
