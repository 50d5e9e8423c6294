// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// Usage lists the supported sub-commands.
const Usage = `usage: client [flags] <command> [arguments]

commands:
  token                              obtain an access/refresh token pair
  refresh <refresh-token>            obtain a new access token
  verify <token>                     check a token
  version                            print the server version and token lifetimes
  list [page] [page-size]            list users
  get <id>                           show a user
  create <username> <password> [email]
  delete <id>                        delete a user
`

// App is the command-line client.
type App struct {
	adapter     adapter.ServerAdapter
	credentials config.ClientCredentials
	out         io.Writer
	logger      *logger.Logger
}

type command struct {
	minArgs, maxArgs int
	authenticated    bool
	run              func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"token":   {run: (*App).token},
	"refresh": {minArgs: 1, maxArgs: 1, run: (*App).refresh},
	"verify":  {minArgs: 1, maxArgs: 1, run: (*App).verify},
	"version": {run: (*App).version},
	"list":    {maxArgs: 2, authenticated: true, run: (*App).list},
	"get":     {minArgs: 1, maxArgs: 1, authenticated: true, run: (*App).get},
	"create":  {minArgs: 2, maxArgs: 3, authenticated: true, run: (*App).create},
	"delete":  {minArgs: 1, maxArgs: 1, authenticated: true, run: (*App).delete},
}

// NewApp creates an App that prints results to out.
func NewApp(serverAdapter adapter.ServerAdapter, credentials config.ClientCredentials, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:     serverAdapter,
		credentials: credentials,
		out:         out,
		logger:      logger,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) < cmd.minArgs || len(rest) > cmd.maxArgs {
		return fmt.Errorf("%w for %q", ErrUsage, name)
	}

	if cmd.authenticated {
		if err := a.authenticate(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(a, ctx, rest)
}

// authenticate prefers a configured token and falls back to credentials.
func (a *App) authenticate(ctx context.Context) error {
	if a.credentials.Token != "" {
		a.adapter.SetToken(a.credentials.Token)
		return nil
	}

	if a.credentials.Username == "" || a.credentials.Password == "" {
		return ErrNoCredentials
	}

	if _, err := a.adapter.ObtainToken(ctx, a.credentials.Credentials()); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	return nil
}

func (a *App) token(ctx context.Context, _ []string) error {
	if a.credentials.Username == "" || a.credentials.Password == "" {
		return ErrNoCredentials
	}

	pair, err := a.adapter.ObtainToken(ctx, a.credentials.Credentials())
	if err != nil {
		return err
	}
	return a.print(pair)
}

func (a *App) refresh(ctx context.Context, args []string) error {
	access, err := a.adapter.RefreshToken(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(models.AccessResponse{Access: access})
}

func (a *App) verify(ctx context.Context, args []string) error {
	if err := a.adapter.VerifyToken(ctx, args[0]); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "token is valid")
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	info, err := a.adapter.AppInfo(ctx)
	if err != nil {
		return err
	}
	return a.print(info)
}

func (a *App) list(ctx context.Context, args []string) error {
	var page, pageSize int
	var err error

	if len(args) > 0 {
		if page, err = positiveInt(args[0]); err != nil {
			return fmt.Errorf("%w: page: %w", ErrUsage, err)
		}
	}
	if len(args) > 1 {
		if pageSize, err = positiveInt(args[1]); err != nil {
			return fmt.Errorf("%w: page size: %w", ErrUsage, err)
		}
	}

	list, err := a.adapter.ListUsers(ctx, page, pageSize)
	if err != nil {
		return err
	}

	return a.print(struct {
		Count    int           `json:"count"`
		Next     string        `json:"next,omitempty"`
		Previous string        `json:"previous,omitempty"`
		Users    []models.User `json:"users"`
	}{list.Count, list.Next, list.Previous, list.Users})
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := positiveInt64(args[0])
	if err != nil {
		return fmt.Errorf("%w: id: %w", ErrUsage, err)
	}

	user, err := a.adapter.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) create(ctx context.Context, args []string) error {
	user := models.User{Username: args[0], Password: args[1]}
	if len(args) > 2 {
		user.Email = args[2]
	}

	created, err := a.adapter.CreateUser(ctx, user)
	if err != nil {
		return err
	}
	return a.print(created)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := positiveInt64(args[0])
	if err != nil {
		return fmt.Errorf("%w: id: %w", ErrUsage, err)
	}

	if err = a.adapter.DeleteUser(ctx, id); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "user %d deleted\n", id)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

func positiveInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
