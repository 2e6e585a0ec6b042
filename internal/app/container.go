// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/freewipe/internal/domain"
	"github.com/runoshun/freewipe/internal/infra/archive"
	"github.com/runoshun/freewipe/internal/infra/config"
	"github.com/runoshun/freewipe/internal/infra/drives"
	"github.com/runoshun/freewipe/internal/infra/executor"
	"github.com/runoshun/freewipe/internal/infra/fetcher"
	"github.com/runoshun/freewipe/internal/infra/logging"
	"github.com/runoshun/freewipe/internal/infra/report"
	"github.com/runoshun/freewipe/internal/tui"
	"github.com/runoshun/freewipe/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	Home       string // Directory the tool directory and archive live under
	ConfigPath string // Path to config.toml
}

// homeDir returns %USERPROFILE%, falling back to the OS home directory.
func homeDir() (string, error) {
	if home := os.Getenv("USERPROFILE"); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

// Deps groups the ports bound by NewWithDeps.
// Nil fields keep the production implementation.
type Deps struct {
	Drives        domain.DriveEnumerator
	Fetcher       domain.Fetcher
	Extractor     domain.Extractor
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Reports       domain.ReportWriter
	Pauser        domain.Pauser
	Clock         domain.Clock
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Drives        domain.DriveEnumerator
	Fetcher       domain.Fetcher
	Extractor     domain.Extractor
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Reports       domain.ReportWriter // nil = file report from AppConfig
	Pauser        domain.Pauser       // nil = terminal prompt
	Clock         domain.Clock

	// Pointer fields
	Logger     *slog.Logger
	AppConfig  *domain.Config
	fileLogger *logging.Logger

	// Configuration
	Config Config

	loggerOnce sync.Once
	noFileLog  bool
}

// New creates a new Container, loading the configuration file.
func New() (*Container, error) {
	home, err := homeDir()
	if err != nil {
		return nil, err
	}

	configLoader := config.NewLoader()
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	return &Container{
		Drives:        drives.NewEnumerator(),
		Fetcher:       fetcher.NewClient(time.Duration(appConfig.Fetch.Timeout)),
		Extractor:     archive.NewExtractor(),
		Executor:      executor.NewClient(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(),
		Clock:         domain.RealClock{},
		AppConfig:     appConfig,
		Config: Config{
			Home:       home,
			ConfigPath: configLoader.Path(),
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, deps Deps) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	c := &Container{
		Drives:        deps.Drives,
		Fetcher:       deps.Fetcher,
		Extractor:     deps.Extractor,
		Executor:      deps.Executor,
		ConfigLoader:  deps.ConfigLoader,
		ConfigManager: deps.ConfigManager,
		Reports:       deps.Reports,
		Pauser:        deps.Pauser,
		Clock:         deps.Clock,
		AppConfig:     appConfig,
		Config:        cfg,
	}
	if c.Drives == nil {
		c.Drives = drives.NewEnumerator()
	}
	if c.Fetcher == nil {
		c.Fetcher = fetcher.NewClient(time.Duration(appConfig.Fetch.Timeout))
	}
	if c.Extractor == nil {
		c.Extractor = archive.NewExtractor()
	}
	if c.Executor == nil {
		c.Executor = executor.NewClient()
	}
	confDir := ""
	if cfg.ConfigPath != "" {
		confDir = filepath.Dir(cfg.ConfigPath)
	}
	if c.ConfigLoader == nil {
		c.ConfigLoader = config.NewLoaderWithGlobalDir(confDir)
	}
	if c.ConfigManager == nil {
		c.ConfigManager = config.NewManagerWithGlobalDir(confDir)
	}
	if c.Clock == nil {
		c.Clock = domain.RealClock{}
	}
	return c
}

// ToolPaths resolves the SDelete locations for the current configuration.
func (c *Container) ToolPaths() domain.ToolPaths {
	return domain.ResolveToolPaths(c.AppConfig, c.Config.Home)
}

// OperationLogger returns the file logger, creating it on first use so
// that command-line overrides of the log level are honored.
// At debug level every entry is mirrored to stderr.
func (c *Container) OperationLogger() domain.Logger {
	c.loggerOnce.Do(func() {
		level := logging.ParseLevel(c.AppConfig.Log.Level)
		c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		logsDir := c.ToolPaths().LogsDir
		if c.noFileLog {
			logsDir = ""
		}
		c.fileLogger = logging.New(logsDir, level)
		if level == slog.LevelDebug {
			c.fileLogger.WithMirror(c.Logger)
		}
	})
	return c.fileLogger
}

// DisableFileLog keeps the operation logger off disk. It must be called
// before the logger is first used.
func (c *Container) DisableFileLog() {
	c.noFileLog = true
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.fileLogger == nil {
		return nil
	}
	return c.fileLogger.Close()
}

// reportWriter returns the configured report sink, or nil when reports are
// disabled.
func (c *Container) reportWriter() domain.ReportWriter {
	if !c.AppConfig.ReportEnabled() {
		return nil
	}
	if c.Reports != nil {
		return c.Reports
	}
	return report.New(c.ToolPaths().Report)
}

func (c *Container) pauser(in io.Reader, out io.Writer) domain.Pauser {
	if c.Pauser != nil {
		return c.Pauser
	}
	return tui.NewPauser(in, out, c.AppConfig.UI.NoColor)
}

// Presenter returns a console presenter writing to out.
func (c *Container) Presenter(out io.Writer) *tui.Presenter {
	return tui.NewPresenter(out, c.AppConfig.UI.NoColor)
}

// UseCase factory methods

// PrepareToolUseCase returns a new PrepareTool use case.
func (c *Container) PrepareToolUseCase(out io.Writer) *usecase.PrepareTool {
	return usecase.NewPrepareTool(c.Fetcher, c.Extractor, c.Presenter(out), c.OperationLogger())
}

// ListDrivesUseCase returns a new ListDrives use case.
func (c *Container) ListDrivesUseCase() *usecase.ListDrives {
	return usecase.NewListDrives(c.Drives)
}

// SweepUseCase returns a new Sweep use case reading the exit prompt from in.
func (c *Container) SweepUseCase(in io.Reader, out io.Writer) *usecase.Sweep {
	presenter := c.Presenter(out)
	logger := c.OperationLogger()
	return usecase.NewSweep(
		usecase.NewPrepareTool(c.Fetcher, c.Extractor, presenter, logger),
		usecase.NewListDrives(c.Drives),
		usecase.NewWipeDrives(c.Executor, presenter, logger, c.Clock),
		c.reportWriter(),
		c.pauser(in, out),
		presenter,
		logger,
		c.Clock,
	)
}

// ShowReportUseCase returns a new ShowReport use case for the configured report path.
func (c *Container) ShowReportUseCase() *usecase.ShowReport {
	return usecase.NewShowReport(report.New(c.ToolPaths().Report))
}

// ShowLogsUseCase returns a new ShowLogs use case for freewipe.log.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(filepath.Join(c.ToolPaths().LogsDir, domain.LogFileName))
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
