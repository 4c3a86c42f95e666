// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command adminctl is the operator tool for the admin API.
//
// # Usage
//
//	adminctl up                         apply pending migrations
//	adminctl down -steps N              roll back N migrations
//	adminctl version                    print the schema version
//	adminctl superuser -u NAME -p PASS  create a superuser holding a role
//
// Configuration is read from the same environment as the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/taibuivan/elementadmin/internal/platform/config"
	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/migration"
	pgstore "github.com/taibuivan/elementadmin/internal/platform/postgres"
	"github.com/taibuivan/elementadmin/internal/platform/sec"
	"github.com/taibuivan/elementadmin/internal/system/role"
	"github.com/taibuivan/elementadmin/internal/system/user"
	"github.com/taibuivan/elementadmin/pkg/idlist"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With(slog.String("app", constants.AppName))

	cfg, err := config.Load()
	if err != nil {
		fail(log, "load configuration", err)
	}

	switch os.Args[1] {
	case "up":
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			fail(log, "migrate up", err)
		}

	case "down":
		flags := flag.NewFlagSet("down", flag.ExitOnError)
		steps := flags.Int("steps", 1, "number of migrations to roll back")
		_ = flags.Parse(os.Args[2:])

		if *steps < 1 {
			fmt.Fprintln(os.Stderr, "down: -steps must be at least 1")
			os.Exit(2)
		}
		if err := migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, *steps, log); err != nil {
			fail(log, "migrate down", err)
		}

	case "version":
		status, err := migration.CurrentVersion(cfg.DatabaseURL, cfg.MigrationPath, log)
		if err != nil {
			fail(log, "read schema version", err)
		}
		switch {
		case status.Empty:
			fmt.Println("no migration applied")
		case status.Dirty:
			fmt.Printf("version %d (dirty)\n", status.Version)
		default:
			fmt.Printf("version %d\n", status.Version)
		}

	case "superuser":
		flags := flag.NewFlagSet("superuser", flag.ExitOnError)
		username := flags.String("u", "", "login name (required)")
		password := flags.String("p", "", "password (required)")
		nickname := flags.String("n", "", "display name, defaults to the login name")
		roleName := flags.String("role", "administrator", "role granted to the user")
		_ = flags.Parse(os.Args[2:])

		if strings.TrimSpace(*username) == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "superuser: -u and -p are required")
			flags.PrintDefaults()
			os.Exit(2)
		}
		if *nickname == "" {
			*nickname = *username
		}

		if err := createSuperuser(cfg, log, *username, *nickname, *password, *roleName); err != nil {
			fail(log, "create superuser", err)
		}

	default:
		printUsage()
		os.Exit(2)
	}
}

// createSuperuser ensures the named role exists and registers a superuser
// holding it. A superuser without any role resolves to an empty menu tree.
func createSuperuser(cfg *config.Config, log *slog.Logger, username, nickname, password, roleName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	roles := role.NewService(role.NewPostgresRepository(pool), log)
	roleID, err := ensureRole(ctx, roles, roleName)
	if err != nil {
		return err
	}

	// Registration never touches sessions.
	users := user.NewService(user.NewPostgresRepository(pool), nil, log)
	created, err := users.Register(ctx, 0, &user.SaveInput{
		Username: username,
		Nickname: nickname,
		Password: password,
		UserType: sec.UserTypeSuperuser,
		Roles:    idlist.List{roleID},
	})
	if err != nil {
		return err
	}

	fmt.Printf("superuser %q created (id %d, role %q)\n", created.Username, created.ID, roleName)
	return nil
}

func ensureRole(ctx context.Context, roles *role.Service, name string) (int64, error) {
	page, err := roles.List(ctx, role.ListQuery{
		Query: pagination.Query{Page: 1, PageSize: pagination.MaxPageSize},
		Name:  name,
	})
	if err != nil {
		return 0, err
	}

	// The list filter is a substring match.
	for _, existing := range page.Rows {
		if existing.Name == name {
			return existing.ID, nil
		}
	}

	created := &role.Role{Name: name, Status: 1, Menus: idlist.List{}}
	if err := roles.Save(ctx, 0, created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func fail(log *slog.Logger, action string, err error) {
	log.Error("adminctl_failed", slog.String("action", action), slog.Any("error", err))
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: adminctl <command> [flags]

commands:
  up                    apply pending migrations
  down -steps N         roll back N migrations
  version               print the schema version
  superuser -u -p       create a superuser (flags: -n, -role)`)
}
