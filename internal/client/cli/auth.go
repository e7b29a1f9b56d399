package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %s)\n", user.Email, user.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if _, err := a.api.Connect(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if err := a.saveToken(); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {

	if err := a.api.Disconnect(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if err := a.clearToken(); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Me(ctx context.Context) error {

	user, err := a.api.Me(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "id: %s\nemail: %s\n", user.ID, user.Email)
	return nil
}

func (a *App) Status(ctx context.Context) error {

	status, err := a.api.Status(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	stats, err := a.api.Stats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "db: %v, redis: %v, users: %d, files: %d\n",
		status.DB, status.Redis, stats.Users, stats.Files)
	return nil
}
