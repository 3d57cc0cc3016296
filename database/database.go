package database

import (
	"fmt"
	"log"

	"vault/config"
	"vault/ledger"
	"vault/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// dialector 按驱动构建 gorm 方言
func dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql", "":
		// 构建 MySQL DSN 连接字符串
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
			sslmode,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// logLevel release 模式只输出警告，其余输出全部 SQL
func logLevel(mode string) gormlogger.LogLevel {
	if mode == "release" {
		return gormlogger.Warn
	}
	return gormlogger.Info
}

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	d, err := dialector(cfg.Database)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(d, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel(cfg.Server.Mode)),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Transaction{},
		&models.Goal{},
	); err != nil {
		return fmt.Errorf("迁移数据表失败: %w", err)
	}

	log.Println("数据库初始化成功")
	return nil
}

// Open 按配置返回账目存储；memory 驱动不连接数据库
func Open(cfg *config.Config) (ledger.Store, error) {
	if cfg.Database.Driver == "memory" {
		log.Println("使用内存存储，数据不会持久化")
		return NewMemoryStore(), nil
	}
	if err := Init(cfg); err != nil {
		return nil, err
	}
	return NewStore(DB), nil
}
