// @title        SQL Runner API
// @version      1.0
// @description  瀏覽資料表、執行任意 SQL、帳號註冊登入與查詢紀錄
// @host         localhost:5000
// @BasePath     /
package main

import (
	"fmt"
	"log"
	"os"

	"sql-runner/internal/config"
	"sql-runner/internal/database"
	"sql-runner/internal/handler"
	"sql-runner/internal/middleware"
	"sql-runner/internal/router"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	_ "sql-runner/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadDotEnv      = config.LoadDotEnv
	loadConfig      = config.LoadFromEnv
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

// storeFor 依設定選擇 dialect 與 DSN
func storeFor(cfg *config.Config) (database.Dialect, string) {
	if cfg.UsesPostgres() {
		return database.Postgres, cfg.DatabaseURL
	}
	return database.SQLite, database.SQLiteDSN(cfg.DBPath)
}

func newServer(cfg *config.Config, db database.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Logger.SetLevel(cfg.GommonLevel())
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.Stack(cfg.CORSAllowedOrigins)...)

	router.Setup(e, db)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func serve(listenAddr string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	dialect, dsn := storeFor(cfg)
	if err := runMigrationsFn(dialect, dsn); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db := database.NewProvider(dialect, dsn)
	e := newServer(cfg, db)
	e.Logger.Info(storeSummary(cfg, db))
	return startServer(e, cfg.ListenAddr)
}

// storeSummary names the store a server answers from. The Postgres URL is
// left out since it may carry a password.
func storeSummary(cfg *config.Config, db *database.Provider) string {
	if cfg.UsesPostgres() {
		return fmt.Sprintf("using %s from DATABASE_URL", db.Dialect().Name())
	}
	return fmt.Sprintf("using %s DB: %s", db.Dialect().Name(), cfg.DBPath)
}

func migrate(up bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	dialect, dsn := storeFor(cfg)
	if up {
		err = runMigrationsFn(dialect, dsn)
	} else {
		err = rollbackFn(dialect, dsn)
	}
	if err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var addr string

	rootCmd := &cobra.Command{
		Use:           "sql-runner",
		Short:         "HTTP service for browsing and querying a SQL database",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadDotEnv(".env")
		},
		RunE: func(*cobra.Command, []string) error {
			return serve(addr)
		},
	}
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LISTEN_ADDR)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return serve(addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LISTEN_ADDR)")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the Users and QueryHistory tables",
	}
	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all migrations",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return migrate(true) },
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return migrate(false) },
		},
	)

	rootCmd.AddCommand(serveCmd, migrateCmd)
	return rootCmd
}

func run(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
