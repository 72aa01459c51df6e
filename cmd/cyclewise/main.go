package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclewise/internal/api"
	"github.com/terraincognita07/cyclewise/internal/cli"
	"github.com/terraincognita07/cyclewise/internal/config"
	"github.com/terraincognita07/cyclewise/internal/db"
	"github.com/terraincognita07/cyclewise/internal/i18n"
	"github.com/terraincognita07/cyclewise/internal/security"
	"github.com/terraincognita07/cyclewise/internal/services"
	"gorm.io/gorm"
)

const usage = `usage: cyclewise [command]

commands:
  serve            run the HTTP API (default)
  summary          print today's phase, insights and journal prompt
  reset-data --yes delete the profile, logs, period entries and journal
  set-passcode     set or change the app passcode
  clear-passcode   remove the app passcode
`

var errUnknownCommand = errors.New("unknown command")

type application struct {
	config      config.Config
	log         *logrus.Logger
	database    *gorm.DB
	repos       *db.Repositories
	i18n        *i18n.Manager
	profiles    *services.ProfileService
	symptomLogs *services.SymptomLogService
	entries     *services.CycleEntryService
	journal     *services.JournalService
	insights    *services.InsightService
	lock        *services.LockService
	export      *services.ExportService
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(".env")
	if err != nil {
		log.WithError(err).Fatal("config: load failed")
	}
	log.SetLevel(cfg.LogLevel)
	time.Local = cfg.Location

	app, err := newApplication(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("startup failed")
	}
	defer app.close()

	if err := runCommand(app, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.WithError(err).Error("command failed")
		app.close()
		os.Exit(1)
	}
}

func newApplication(cfg config.Config, log *logrus.Logger) (*application, error) {
	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("i18n init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	profiles := services.NewProfileService(repos.Profiles, log.WithField("component", "profile"))
	symptomLogs := services.NewSymptomLogService(repos.SymptomLogs)
	entries := services.NewCycleEntryService(repos.Entries)
	journal := services.NewJournalService(repos.Journal)

	return &application{
		config:      cfg,
		log:         log,
		database:    database,
		repos:       repos,
		i18n:        i18nManager,
		profiles:    profiles,
		symptomLogs: symptomLogs,
		entries:     entries,
		journal:     journal,
		insights:    services.NewInsightService(profiles, symptomLogs, journal, security.CryptoRandom{}),
		lock:        services.NewLockService(repos.Locks, cfg.SecretKey, services.DefaultUnlockTTL),
		export:      services.NewExportService(symptomLogs, entries, journal),
	}, nil
}

func (app *application) close() {
	if app.database == nil {
		return
	}
	if sqlDB, err := app.database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	app.database = nil
}

func runCommand(app *application, args []string, stdin *os.File, out io.Writer) error {
	command := "serve"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "serve":
		return serve(app)
	case "summary":
		today := services.TodayAt(time.Now(), app.config.Location)
		return cli.RunSummaryCommand(app.insights, today, out)
	case "reset-data":
		flags := flag.NewFlagSet("reset-data", flag.ContinueOnError)
		flags.SetOutput(out)
		confirmed := flags.Bool("yes", false, "confirm deleting all health data")
		if err := flags.Parse(args); err != nil {
			return err
		}
		return cli.RunResetDataCommand(app.repos, *confirmed, out)
	case "set-passcode":
		if app.config.SecretKeyEphemeral {
			return errors.New("set SECRET_KEY before enabling the app passcode")
		}
		return cli.RunSetPasscodeCommand(app.lock, stdin, out)
	case "clear-passcode":
		return cli.RunClearPasscodeCommand(app.lock, out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownCommand, command)
	}
}

func newHTTPApp(app *application) *fiber.App {
	handler := api.NewHandler(api.Dependencies{
		Profiles:     app.profiles,
		SymptomLogs:  app.symptomLogs,
		Entries:      app.entries,
		Journal:      app.journal,
		Insights:     app.insights,
		Lock:         app.lock,
		Export:       app.export,
		I18n:         app.i18n,
		Location:     app.config.Location,
		Log:          app.log.WithField("component", "api"),
		CookieSecure: app.config.CookieSecure,
	})

	server := fiber.New(fiber.Config{
		AppName:               "Cyclewise",
		DisableStartupMessage: true,
	})
	server.Use(recover.New())
	server.Use(logger.New(logger.Config{Output: app.log.WriterLevel(logrus.InfoLevel)}))
	server.Use(compress.New())
	if origins := app.config.CORSAllowedOrigins; origins != "" {
		credentials := true
		if config.HasWildcardOrigin(origins) {
			app.log.Warn("cors: wildcard origin set, credentials disabled")
			origins = "*"
			credentials = false
		}
		server.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowHeaders:     "Authorization, Content-Type, Accept-Language",
			AllowCredentials: credentials,
		}))
	}
	server.Use(handler.LanguageMiddleware)
	api.RegisterRoutes(server, handler)
	server.Use(handler.NotFound)
	return server
}

func newNotifier(app *application) services.Notifier {
	if app.config.TelegramEnabled() {
		return services.NewTelegramNotifier(app.config.TelegramBotToken, app.config.TelegramChatID)
	}
	return services.LogNotifier{Log: app.log.WithField("component", "reminders")}
}

func serve(app *application) error {
	if app.config.SecretKeyEphemeral {
		app.log.Warn("SECRET_KEY is not set: unlock tokens will not survive a restart")
	}

	server := newHTTPApp(app)

	reminders := services.NewReminderService(app.profiles, newNotifier(app), services.ReminderConfig{
		Schedule:   app.config.ReminderSchedule,
		DaysBefore: app.config.ReminderDaysBefore,
		Location:   app.config.Location,
	}, app.log.WithField("component", "reminders"))

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	if err := reminders.Start(lifecycleCtx); err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			app.log.WithError(err).Error("server shutdown failed")
		}
	}()

	app.log.WithFields(logrus.Fields{
		"port": app.config.Port,
		"db":   app.config.DBPath,
		"tz":   app.config.Location.String(),
	}).Info("cyclewise listening")
	return server.Listen(":" + app.config.Port)
}
