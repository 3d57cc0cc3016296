package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"vault/config"
	"vault/database"
	"vault/events"
	"vault/ledger"
	"vault/logger"
	"vault/router"
	"vault/service"

	"github.com/joho/godotenv"
)

// @title Vault API
// @version 1.0
// @description 个人财务看板：收支记录、储蓄目标和月度分析
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Vault v1.0.0")
		return
	}

	// .env 中的 VAULT_* 变量可覆盖配置，文件不存在时忽略
	if err := godotenv.Load(); err == nil {
		log.Println("已加载 .env")
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	level := logger.ParseLevel(cfg.Server.Mode)
	logger.SetLevel(level)
	logger.SetDefault(logger.NewWithWriter("vault", os.Stdout, level))
	loc := cfg.Location()

	// 初始化存储
	store, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 事件推送
	var publisher events.Publisher = events.Nop{}
	if cfg.Events.Enabled {
		p, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Printf("警告: 事件推送不可用: %v", err)
		} else {
			publisher = p
			defer p.Close()
		}
	}

	dash := ledger.NewDashboard(store,
		ledger.WithClock(func() time.Time { return time.Now().In(loc) }),
		ledger.WithPublisher(publisher),
		ledger.WithLogger(logger.NewWithWriter("ledger", os.Stdout, level)),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := dash.Refresh(ctx); err != nil {
		log.Printf("警告: 初始数据加载失败: %v", err)
	}
	cancel()

	// 月度报告
	deps := router.Deps{Dashboard: dash, Store: store}
	if cfg.Email.Enabled {
		reporter := service.NewReporter(store, service.NewEmailService(&cfg.Email), cfg.Report.Recipient, loc)
		deps.Reporter = reporter
		c, err := service.StartScheduler(cfg.Report, reporter)
		if err != nil {
			log.Fatalf("启动月度报告失败: %v", err)
		}
		if c != nil {
			defer c.Stop()
		}
	}

	// 设置路由
	r := router.SetupRouter(cfg, deps)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  💰 Vault 已启动 (%s)", ledger.FormatMonth(dash.Month()))
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("  Metrics:  http://localhost%s/metrics", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
