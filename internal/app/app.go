package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventTicketing/internal/config"
	"github.com/stpnv0/EventTicketing/internal/handler"
	"github.com/stpnv0/EventTicketing/internal/middleware"
	"github.com/stpnv0/EventTicketing/internal/notification"
	"github.com/stpnv0/EventTicketing/internal/payment"
	"github.com/stpnv0/EventTicketing/internal/report"
	"github.com/stpnv0/EventTicketing/internal/repository"
	"github.com/stpnv0/EventTicketing/internal/repository/memory"
	"github.com/stpnv0/EventTicketing/internal/router"
	"github.com/stpnv0/EventTicketing/internal/scheduler"
	"github.com/stpnv0/EventTicketing/internal/service"
	"github.com/stpnv0/EventTicketing/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	amqp       *report.AMQPReporter
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type stores struct {
	events   ports.EventRepo
	bookings ports.BookingRepo
	users    ports.UserRepo
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventTicketing",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	st, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (stores, error) {
	if a.cfg.Storage.Driver != config.StoragePostgres {
		a.log.Warn("using in-memory storage, data is lost on restart")
		return stores{
			events:   memory.NewEventRepo(),
			bookings: memory.NewBookingRepo(),
			users:    memory.NewUserRepo(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return stores{}, fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return stores{}, fmt.Errorf("init db: %w", err)
	}

	return stores{
		events:   repository.NewEventRepo(a.db),
		bookings: repository.NewBookingRepo(a.db),
		users:    repository.NewUserRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initReporter() (ports.Reporter, error) {
	reporters := report.Fanout{report.NewLogReporter(a.log)}

	if a.cfg.RabbitMQ.Enabled {
		r, err := report.NewAMQPReporter(
			a.cfg.RabbitMQ.URL,
			a.cfg.RabbitMQ.Queue,
			a.cfg.RabbitMQ.PublishTimeout,
			a.log,
		)
		if err != nil {
			return nil, fmt.Errorf("init amqp reporter: %w", err)
		}
		a.amqp = r
		reporters = append(reporters, r)

		a.log.LogAttrs(context.Background(), logger.InfoLevel, "publishing outcomes to rabbitmq",
			logger.String("queue", a.cfg.RabbitMQ.Queue),
		)
	}

	return reporters, nil
}

func (a *App) initServices(st stores) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	reporter, err := a.initReporter()
	if err != nil {
		return err
	}

	payments := payment.NewGateway(a.log)
	locker := service.NewEventLocker()

	userService := service.NewUserService(st.users)
	eventService := service.NewEventService(st.events, st.bookings, st.users, payments, n, reporter, locker, a.log)
	bookingService := service.NewBookingService(st.bookings, st.events, st.users, payments, reporter, locker, a.log)
	auditService := service.NewAuditService(st.events, st.bookings, reporter, locker, a.log)

	a.scheduler = scheduler.New(
		auditService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, bookingService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Session(userService),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.amqp != nil {
		if err := a.amqp.Close(); err != nil {
			a.log.Error("failed to close rabbitmq connection", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
