// Package wire provides dependency injection for the todo application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	cliadapter "github.com/example/todo/internal/adapters/cli"
	"github.com/example/todo/internal/adapters/sqlite"
	"github.com/example/todo/internal/app"
	"github.com/example/todo/internal/config"
	"github.com/example/todo/internal/db"
	"github.com/example/todo/internal/logging"
	"github.com/example/todo/internal/ports/primary"
)

// Settings carries CLI overrides applied on top of the loaded config.
// Empty fields leave the config value in place.
type Settings struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	LogOutput  io.Writer
}

var (
	todoService primary.TodoService
	database    *sql.DB
	logger      *log.Logger
	initErr     error
	once        sync.Once
)

// Init bootstraps the database and builds the services.
// Only the first call does any work; later calls return its result.
func Init(ctx context.Context, settings Settings) error {
	once.Do(func() {
		initErr = initServices(ctx, settings)
	})
	return initErr
}

// TodoService returns the singleton TodoService instance.
// Init must have succeeded first.
func TodoService() primary.TodoService {
	return todoService
}

// TodoAdapter returns a new TodoAdapter writing to stdout.
func TodoAdapter() *cliadapter.TodoAdapter {
	return TodoAdapterWithOutput(os.Stdout)
}

// TodoAdapterWithOutput returns a new TodoAdapter writing to the given output.
// Each call creates a new adapter (adapters are stateless translators).
func TodoAdapterWithOutput(out io.Writer) *cliadapter.TodoAdapter {
	return cliadapter.NewTodoAdapter(todoService, out)
}

// Close releases the connection pool if one was opened.
func Close() error {
	if database != nil {
		return database.Close()
	}
	return nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices(ctx context.Context, settings Settings) error {
	cfg, err := loadConfig(settings)
	if err != nil {
		return err
	}

	logOutput := settings.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	logger = logging.New(logOutput, cfg.LogLevel, cfg.LogFormat)

	database, err = db.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Create repository adapters (secondary ports) with injected DB
	todoRepo := sqlite.NewTodoRepository(database)

	// Create services (primary ports implementation)
	todoService = app.NewTodoService(todoRepo)
	return nil
}

func loadConfig(settings Settings) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if settings.ConfigPath != "" {
		cfg, err = config.LoadFile(settings.ConfigPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if settings.DBPath != "" {
		cfg.DBPath = settings.DBPath
	}
	if settings.LogLevel != "" {
		cfg.LogLevel = settings.LogLevel
	}
	return cfg, nil
}
