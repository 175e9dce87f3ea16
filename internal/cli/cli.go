// Package cli dispatches the wordbook subcommands: the HTTP server and the
// administrative database and user commands.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"wordbook/internal/config"
	"wordbook/internal/logger"
	"wordbook/internal/repository"
	"wordbook/internal/repository/db"
	"wordbook/internal/service"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const usageText = `usage: wordbook [-config dir] [-db path] <command>

commands:
  serve                                  run the HTTP server (default)
  db install                             create the schema if missing
  db seed                                add demo users, categories and words
  user add <username> <password>         create a user
  user set-password <username> <password>  replace a user's password
`

// errUsage marks malformed command lines.
var errUsage = errors.New("usage")

// env is what every command runs against.
type env struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *sql.DB
	services *service.Service
	stdout   io.Writer

	// installed reports whether open created the schema.
	installed bool
}

type command struct {
	name string
	run  func(ctx context.Context, e *env) error
}

// Run executes the command line args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wordbook", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { _, _ = io.WriteString(stderr, usageText) }
	configDir := fs.String("config", "configs", "directory holding config.yml")
	dbPath := fs.String("db", "", "SQLite database path (overrides db.path)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	cmd, err := parseCommand(fs.Args())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n\n%s", err, usageText)
		return ExitUsage
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}
	if *dbPath != "" {
		cfg.DB.Path = *dbPath
	}

	// Logs go to stderr so command output on stdout stays scriptable.
	log := logger.NewWithWriter(cfg.LogLevel, stderr)
	defer func() { _ = log.Sync() }()

	e, err := open(ctx, cfg, log, stdout)
	if err != nil {
		log.Errorw("startup_failed", "err", err, "db_path", cfg.DB.Path)
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}
	defer func() {
		if cerr := e.db.Close(); cerr != nil {
			log.Errorw("db_close_failed", "err", cerr)
		}
	}()

	if err := cmd.run(ctx, e); err != nil {
		log.Errorw("command_failed", "command", cmd.name, "err", err)
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

// parseCommand maps positional args onto a command. An empty command line
// means serve.
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{name: "serve", run: serve}, nil
	}
	switch args[0] {
	case "serve":
		if len(args) != 1 {
			return command{}, fmt.Errorf("%w: serve takes no arguments", errUsage)
		}
		return command{name: "serve", run: serve}, nil
	case "db":
		if len(args) != 2 {
			return command{}, fmt.Errorf("%w: db needs one of install, seed", errUsage)
		}
		switch args[1] {
		case "install":
			return command{name: "db install", run: installSchema}, nil
		case "seed":
			return command{name: "db seed", run: seed}, nil
		}
		return command{}, fmt.Errorf("%w: unknown db command %q", errUsage, args[1])
	case "user":
		if len(args) < 2 {
			return command{}, fmt.Errorf("%w: user needs one of add, set-password", errUsage)
		}
		sub := args[1]
		if sub != "add" && sub != "set-password" {
			return command{}, fmt.Errorf("%w: unknown user command %q", errUsage, sub)
		}
		if len(args) != 4 {
			return command{}, fmt.Errorf("%w: user %s <username> <password>", errUsage, sub)
		}
		name, password := args[2], args[3]
		if strings.TrimSpace(name) == "" {
			return command{}, fmt.Errorf("%w: username must not be empty", errUsage)
		}
		if sub == "add" {
			return command{name: "user add", run: addUser(name, password)}, nil
		}
		return command{name: "user set-password", run: setPassword(name, password)}, nil
	}
	return command{}, fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

// open connects to the store, installs the schema if needed and wires the
// services.
func open(ctx context.Context, cfg *config.Config, log *logger.Logger, stdout io.Writer) (*env, error) {
	conn, err := db.Open(ctx, cfg.DB.Path, cfg.DB.MaxOpenConns)
	if err != nil {
		return nil, err
	}
	installed, err := db.InstallSchema(ctx, conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if installed {
		log.Infow("schema_installed", "db_path", cfg.DB.Path)
	}

	services := service.NewService(repository.NewRepository(conn), service.Options{
		HashWorkers: cfg.Hashing.Workers,
		Argon2: service.Argon2Params{
			Memory:      cfg.Hashing.MemoryKiB,
			Iterations:  cfg.Hashing.Iterations,
			Parallelism: cfg.Hashing.Parallelism,
		},
	}, log)

	return &env{cfg: cfg, log: log, db: conn, services: services, stdout: stdout, installed: installed}, nil
}

func installSchema(_ context.Context, e *env) error {
	if e.installed {
		_, _ = fmt.Fprintln(e.stdout, "schema installed")
	} else {
		_, _ = fmt.Fprintln(e.stdout, "schema up to date")
	}
	return nil
}

func seed(ctx context.Context, e *env) error {
	seeded, err := e.services.Seeds.Seed(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		_, _ = fmt.Fprintln(e.stdout, "seed data already present")
		return nil
	}
	_, _ = fmt.Fprintln(e.stdout, "seed data installed")
	return nil
}

func addUser(name, password string) func(context.Context, *env) error {
	return func(ctx context.Context, e *env) error {
		id, err := e.services.Users.AddUser(ctx, name, password)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(e.stdout, "created user %q (id %d)\n", name, id)
		return nil
	}
}

func setPassword(name, password string) func(context.Context, *env) error {
	return func(ctx context.Context, e *env) error {
		if err := e.services.Users.SetPasswordByName(ctx, name, password); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(e.stdout, "password updated for %q\n", name)
		return nil
	}
}
