package router

import (
	"context"
	"net/http"
	"time"

	"vault/api"
	"vault/config"
	_ "vault/docs"
	"vault/ledger"
	"vault/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps 路由依赖
type Deps struct {
	Dashboard *ledger.Dashboard
	Store     ledger.Store
	Reporter  api.MonthlyReporter
	// Registry 为空时使用新的注册表
	Registry *prometheus.Registry
}

// pinger 可检查连接状态的存储
type pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	loc := cfg.Location()

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())
	r.Use(middleware.Metrics(reg))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	stateHandler := api.NewStateHandler(deps.Dashboard, loc)
	transactionHandler := api.NewTransactionHandler(deps.Dashboard)
	goalHandler := api.NewGoalHandler(deps.Dashboard)
	analysisHandler := api.NewAnalysisHandler(deps.Dashboard)
	exportHandler := api.NewExportHandler(deps.Store, deps.Dashboard, loc)

	// API v1 路由组，写接口按 IP 限流
	v1 := r.Group("/api/v1")
	v1.Use(middleware.WriteRateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
	{
		state := v1.Group("/state")
		{
			state.GET("", stateHandler.Get)
			state.PUT("/month", stateHandler.SetMonth)
			state.PUT("/view", stateHandler.SetView)
			state.PUT("/search", stateHandler.SetSearch)
			state.PUT("/goal", stateHandler.SelectGoal)
			state.POST("/refresh", stateHandler.Refresh)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.POST("", transactionHandler.Create)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", goalHandler.List)
			goals.POST("", goalHandler.Create)
			goals.GET("/colors", goalHandler.Colors)
		}

		v1.GET("/analysis", analysisHandler.Get)
		v1.GET("/categories", analysisHandler.Categories)

		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}

		if deps.Reporter != nil {
			reportHandler := api.NewReportHandler(deps.Reporter, deps.Dashboard, loc)
			v1.POST("/reports/monthly", reportHandler.SendMonthly)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		if p, ok := deps.Store.(pinger); ok {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unavailable",
					"error":  api.SafeErrorMessage(err, "database unavailable"),
				})
				return
			}
		}
		c.JSON(200, gin.H{
			"status": "ok",
			"month":  ledger.FormatMonth(deps.Dashboard.Month()),
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
