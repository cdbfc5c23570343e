package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/agency-cockpit/configs"
	"github.com/maheshrc27/agency-cockpit/internal/api"
	"github.com/maheshrc27/agency-cockpit/internal/api/handlers"
	"github.com/maheshrc27/agency-cockpit/internal/api/middleware"
	job "github.com/maheshrc27/agency-cockpit/internal/jobs"
	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/maheshrc27/agency-cockpit/internal/queue"
	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/maheshrc27/agency-cockpit/internal/service"
	applog "github.com/maheshrc27/agency-cockpit/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"
	_ "modernc.org/sqlite"
)

type stores struct {
	accounts repository.AccountRepository
	posts    repository.PostRepository
	db       *sql.DB
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	lg, flush, err := applog.New(applog.Options{Env: cfg.Env, SentryDSN: cfg.SentryDSN})
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer flush()
	slog.SetDefault(lg)

	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer closeDB(st.db)

	var (
		rdb         *redis.Client
		asynqClient *asynq.Client
		asynqServer *asynq.Server
		codes       = repository.NewMemoryCodeRepository()
	)
	if cfg.RedisURI != "" {
		redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
		asynqClient = asynq.NewClient(redisConn)
		defer asynqClient.Close()

		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
		defer rdb.Close()
		codes = repository.NewRedisCodeRepository(rdb)

		if cfg.AutomationEnabled() {
			queueW := queue.NewQueue(cfg.WebhookURL, nil)

			asynqServer = asynq.NewServer(redisConn, asynq.Config{
				Concurrency: 10,
			})
			mux := asynq.NewServeMux()
			mux.HandleFunc(queue.TaskTypePostReady, queueW.HandlePostReadyTask)

			slog.Info("Starting the Asynq server...")
			if err := asynqServer.Start(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}
	}

	status := models.PostStatusPlanned
	if cfg.AutomationEnabled() {
		status = models.PostStatusReady
	}

	accountService := service.NewAccountService(st.accounts)
	postService := service.NewPostService(st.posts, st.accounts, status)
	mediaService, err := service.NewMediaService(ctx, *cfg)
	if err != nil {
		log.Fatalf("Failed to set up media storage: %v", err)
	}
	platformService := service.NewPlatformService(cfg.SecretKey, service.FacebookOAuthConfig(*cfg), st.accounts, codes)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error(err.Error(), "path", c.Path())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	api.RegisterRoutes(app, *cfg, api.Handlers{
		Accounts:  handlers.NewAccountHandler(accountService, postService),
		Posts:     handlers.NewPostHandler(postService, mediaService, asynqClient),
		Auth:      handlers.NewAuthHandler(*cfg, accountService),
		Platforms: handlers.NewPlatformHandler(platformService, accountService, *cfg),
		Session:   middleware.NewSessionMiddleware(*cfg),
	})

	// cron jobs
	codeCleanupJob := job.NewCodeCleanupJob(codes)

	c := cron.New()
	c.AddFunc("@every 10m", codeCleanupJob.PurgeCodes)
	c.Start()
	defer c.Stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	slog.Info("Server is running", "port", cfg.Port, "store", cfg.Store.Driver, "token_mode", cfg.TokenMode, "automation", cfg.AutomationEnabled())

	gracefulShutdown(app, asynqServer)
}

func openStore(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.Store.Driver == config.DriverSheets {
		values, err := repository.NewGoogleSheetValues(ctx, cfg.Sheets.CredentialsPath, cfg.Sheets.SpreadsheetID)
		if err != nil {
			return nil, err
		}
		sheet := repository.NewSheetStore(values)
		return &stores{
			accounts: repository.NewSheetAccountRepository(sheet, cfg.Sheets.AccountsSheet),
			posts:    repository.NewSheetPostRepository(sheet, cfg.Sheets.PostsSheet),
		}, nil
	}

	driverName, dsn := "sqlite", cfg.Store.SQLitePath
	if cfg.Store.Driver == config.DriverPostgres {
		driverName, dsn = "postgres", cfg.Store.PostgresURI
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if cfg.Store.Driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database is unreachable: %w", err)
	}

	if err := repository.Migrate(ctx, db, cfg.Store.Driver); err != nil {
		db.Close()
		return nil, err
	}

	return &stores{
		accounts: repository.NewAccountRepository(db, cfg.Store.Driver),
		posts:    repository.NewPostRepository(db, cfg.Store.Driver),
		db:       db,
	}, nil
}

func closeDB(db *sql.DB) {
	if db == nil {
		return
	}
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, asynqServer *asynq.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	slog.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Failed to shut down server", "error", err)
	}
	if asynqServer != nil {
		asynqServer.Shutdown()
	}

	slog.Info("Server shutdown complete.")
}
