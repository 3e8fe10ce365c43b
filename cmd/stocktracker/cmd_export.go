package main

import (
	"fmt"

	"github.com/shashiranjanraj/stocktracker/app/services"
	"github.com/shashiranjanraj/stocktracker/config"
	"github.com/shashiranjanraj/stocktracker/pkg/cache"
	"github.com/shashiranjanraj/stocktracker/pkg/database"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"github.com/shashiranjanraj/stocktracker/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	exportType string
	exportDisk string
)

func init() {
	exportCmd.Flags().StringVar(&exportType, "type", "products", `export type: "products" or "sales"`)
	exportCmd.Flags().StringVar(&exportDisk, "disk", "", "storage disk (defaults to STORAGE_DISK)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a CSV export to a storage disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connectDB(); err != nil {
			return err
		}
		if err := cache.Connect(); err != nil {
			logger.Warn("redis unavailable, continuing without cache", "error", err)
		}
		storage.Connect()

		disk := exportDisk
		if disk == "" {
			disk = config.StorageDefault()
		}
		if !storage.Has(disk) {
			return fmt.Errorf("unknown storage disk %q", disk)
		}

		path, err := services.NewExportService(database.DB).Archive(exportType, disk)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %s to %s:%s\n", exportType, disk, path)
		return nil
	},
}
