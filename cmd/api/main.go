package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Paws Sync API
// @version 1.0
// @description Perfiles de perros, historial y recordatorios con sincronización en vivo.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var configPath string

var rootCmd = &cobra.Command{
	Use:   "paws-sync",
	Short: "Paws Sync - backend de perfiles de perros y recordatorios",
	Long: `Servicio HTTP + websocket para perfiles de perros, notas, deposiciones,
peso, paseos y recordatorios.

Sin DB_DSN usa un store en memoria; sin JWT_SECRET ni ODIN_BASE_URL corre en
modo dev (header X-Debug-User-ID).

Examples:
  paws-sync serve --config paws.yaml
  paws-sync migrate
  paws-sync token --user u1`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (optional; env vars override it)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
