package main

import (
	"github.com/shashiranjanraj/stocktracker/config"
	"github.com/shashiranjanraj/stocktracker/database/seeders"
	"github.com/shashiranjanraj/stocktracker/pkg/database"
	"github.com/shashiranjanraj/stocktracker/pkg/migration"
	"github.com/spf13/cobra"

	// Register migrations.
	_ "github.com/shashiranjanraj/stocktracker/database/migrations"
)

func init() {
	rootCmd.AddCommand(migrateCmd, rollbackCmd, statusCmd, seedCmd)
}

func connectDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Run()
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Rollback()
	},
}

var statusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Status()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a demo catalogue and sales history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		return seeders.Run(database.DB)
	},
}
