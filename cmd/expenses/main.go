package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vigneshdvlopers/monthly-expense/internal/config"
	"github.com/vigneshdvlopers/monthly-expense/internal/service"
	"github.com/vigneshdvlopers/monthly-expense/internal/storage/sqlite"
	"github.com/vigneshdvlopers/monthly-expense/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := run(cfg, os.Args[1:]); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage()
		if len(args) == 0 {
			return fmt.Errorf("no command given")
		}
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Debug("Storage initialized", "database", cfg.DBPath)

	ctx := context.Background()

	expenses, err := service.NewExpenseService(ctx, store)
	if err != nil {
		return err
	}
	budget, err := service.NewBudgetService(ctx, store)
	if err != nil {
		return err
	}

	app := &app{cfg: cfg, expenses: expenses, budget: budget, out: os.Stdout}

	switch cmd := args[0]; cmd {
	case "add":
		return app.add(ctx, args[1:])
	case "edit":
		return app.edit(ctx, args[1:])
	case "remove":
		return app.remove(ctx, args[1:])
	case "list":
		return app.list(args[1:])
	case "summary":
		return app.summary(args[1:])
	case "budget":
		return app.setBudget(ctx, args[1:])
	case "export":
		return app.export(args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: expenses <command> [flags]

Commands:
  add      -amount <n> -category <id> -desc <text> [-date YYYY-MM-DD]
  edit     -id <id> -amount <n> -category <id> -desc <text> -date YYYY-MM-DD
  remove   -id <id>
  list     [-search <term>] [-category <id>|all]
  summary  Current-month totals and budget health
  budget   [-total <n>] [-category <id> -limit <n>]
  export   [-format csv|xlsx]

Environment: DB_PATH, LOG_LEVEL, EXPORT_DIR (a .env file is honored).
`)
}
