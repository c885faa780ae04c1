package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/apisrv/auth"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/store"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
)

var (
	migrateDown bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		RunE:  runMigrate,
	}

	repUsername string
	repPassword string

	addRepCmd = &cobra.Command{
		Use:   "add-rep",
		Short: "Create a sales rep account",
		RunE:  runAddRep,
	}
)

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back instead of applying")
	addRepCmd.Flags().StringVarP(&repUsername, "username", "u", "", "rep username")
	addRepCmd.Flags().StringVarP(&repPassword, "password", "p", "", "rep password")
	_ = addRepCmd.MarkFlagRequired("username")
	_ = addRepCmd.MarkFlagRequired("password")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	cfg.DB.Automigrate = false
	db, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	dir := migrate.Up
	if migrateDown {
		dir = migrate.Down
	}
	n, err := store.MigrateWithContext(ctx, db.DB, dir)
	if err != nil {
		return err
	}
	fmt.Printf("applied %d migrations\n", n)
	return nil
}

func runAddRep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	authS, err := auth.New(&cfg.Auth, db, nil)
	if err != nil {
		return err
	}
	if _, err := authS.CreateRep(ctx, &dto.CreateRepRequest{
		Username:       repUsername,
		Password:       repPassword,
		MasterPassword: cfg.Auth.MasterPassword,
	}); err != nil {
		return fmt.Errorf("can't create rep: %w", err)
	}
	slog.Default().Info("rep created", slog.String("username", repUsername))
	return nil
}
