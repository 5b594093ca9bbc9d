// Package main is a command line tool that exports and imports ExpenseDaddy backups.
//
// Usage:
//
//	backup export [-o file]   write the backup document to file (stdout when omitted)
//	backup import -i file     restore collections from file ("-" reads stdin)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/expense-daddy/backend/config"
	"github.com/expense-daddy/backend/internal/application/usecase/backup"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/infra/dependency"
	"github.com/expense-daddy/backend/internal/integration/adapters"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		var backupErr *domainerror.BackupError
		if errors.As(err, &backupErr) && len(backupErr.Written) > 0 {
			slog.Error("Import stopped partway, storage now mixes old and new data",
				"written", backupErr.Written,
				"error", err,
			)
		} else {
			slog.Error("Backup command failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: backup <export|import> [flags]")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "export":
		fs := flag.NewFlagSet("export", flag.ContinueOnError)
		output := fs.String("o", "", "output file (stdout when empty)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return withInjector(cfg, func(injector *dependency.Injector) error {
			return exportBackup(ctx, injector.Export, *output, stdout)
		})

	case "import":
		fs := flag.NewFlagSet("import", flag.ContinueOnError)
		input := fs.String("i", "", "backup file to restore, - for stdin")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *input == "" {
			return errors.New("import requires -i <file>")
		}
		return withInjector(cfg, func(injector *dependency.Injector) error {
			return importBackup(ctx, injector.Import, *input, stdin)
		})

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func withInjector(cfg *config.Config, fn func(*dependency.Injector) error) error {
	storage, err := dependency.OpenStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	return fn(dependency.NewInjector(cfg, storage.Store, storage.Backend, adapters.NewSystemClock()))
}

func exportBackup(ctx context.Context, uc *backup.ExportBackupUseCase, path string, stdout io.Writer) error {
	output, err := uc.Execute(ctx)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = stdout.Write(append(output.Data, '\n'))
		return err
	}
	if err := os.WriteFile(path, output.Data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Info("Backup written", "path", path, "bytes", len(output.Data))
	return nil
}

func importBackup(ctx context.Context, uc *backup.ImportBackupUseCase, path string, stdin io.Reader) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	output, err := uc.Execute(ctx, backup.ImportBackupInput{Data: data})
	if err != nil {
		return err
	}
	slog.Info("Backup restored", "version", output.Version, "collections", output.Imported)
	return nil
}
