package internal

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"salary-stats/internal/adapters/hhfetcher"
	logger_adapter "salary-stats/internal/adapters/logger"
	"salary-stats/internal/adapters/superjobfetcher"
	"salary-stats/internal/adapters/tablerender"
	"salary-stats/internal/configs"
	"salary-stats/internal/constants"
	"salary-stats/internal/contextkeys"
	"salary-stats/internal/core/port"
	usecases_port "salary-stats/internal/core/port/usecases"
	"salary-stats/internal/core/usecase"
	fluentlogger "salary-stats/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
	out          io.Writer

	buildReport usecases_port.BuildSalaryReportPort
	renderer    port.TableRendererPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp(appConfig *configs.AppConfig, out io.Writer) (*App, error) {
	if out == nil {
		out = os.Stdout
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer:   os.Stderr,
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ЗАПУСКА ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
		"run_id":       uuid.NewString(),
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	superJobAdapter, err := superjobfetcher.NewSuperJobFetcherAdapter(superjobfetcher.Config{
		BaseURL:      appConfig.SuperJob.BaseURL,
		APIKey:       appConfig.SuperJob.APIKey,
		UserAgent:    appConfig.HTTP.UserAgent,
		RequestDelay: appConfig.HTTP.RequestDelay,
	})
	if err != nil {
		appLogger.Error("Failed to create SuperJob Fetcher Adapter", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to initialize superjob fetcher: %w", err)
	}

	hhAdapter, err := hhfetcher.NewHeadHunterFetcherAdapter(hhfetcher.Config{
		BaseURL:      appConfig.HeadHunter.BaseURL,
		UserAgent:    appConfig.HTTP.UserAgent,
		RequestDelay: appConfig.HTTP.RequestDelay,
	})
	if err != nil {
		appLogger.Error("Failed to create HeadHunter Fetcher Adapter", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to initialize headhunter fetcher: %w", err)
	}
	appLogger.Debug("All outgoing adapters initialized.", nil)

	// --- 4. USE CASES ---
	superJobStats := usecase.NewCollectSalaryStatisticsUseCase(superJobAdapter, constants.SearchKeyword, appConfig.SuperJob.TownID)
	hhStats := usecase.NewCollectSalaryStatisticsUseCase(hhAdapter, constants.SearchKeyword, appConfig.HeadHunter.AreaID)
	buildReport := usecase.NewBuildSalaryReportUseCase(
		usecase.ReportSource{Title: constants.SuperJobTitle, Collector: superJobStats},
		usecase.ReportSource{Title: constants.HeadHunterTitle, Collector: hhStats},
	)

	return &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       baseLogger,
		out:          out,
		buildReport:  buildReport,
		renderer:     tablerender.NewRenderer(),
	}, nil
}

// Run собирает статистику и печатает обе таблицы.
// При любой ошибке ничего не печатается.
func (a *App) Run(ctx context.Context) error {
	defer closeFluent(a.fluentClient)

	appLogger := a.logger.WithFields(port.Fields{"component": "app"})
	ctx = contextkeys.ContextWithLogger(ctx, a.logger)

	appLogger.Info("Collecting salary statistics", port.Fields{
		"languages": strings.Join(a.config.Languages, ","),
	})

	report, err := a.buildReport.Execute(ctx, a.config.Languages)
	if err != nil {
		return fmt.Errorf("failed to build salary report: %w", err)
	}

	rendered := make([]string, 0, len(report.Sections))
	for _, section := range report.Sections {
		rendered = append(rendered, a.renderer.Render(section.Table, section.Title))
	}
	for _, table := range rendered {
		if _, err := fmt.Fprintln(a.out, table); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	appLogger.Info("Report printed", port.Fields{"tables": len(rendered)})
	return nil
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Printf("App: Error closing fluent client: %v\n", err)
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
