package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restaurantx/tableside/internal/qrcode"
)

var qrcodesCmd = &cobra.Command{
	Use:   "qrcodes",
	Short: "Generates the per-table QR codes pointing at the menu",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if err := qrcode.WriteAll(cfg.MenuBaseURL, cfg.TableCount, cfg.QROutputFolder); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating QR codes: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d QR codes to %s\n", cfg.TableCount, cfg.QROutputFolder)
	},
}

func init() {
	rootCmd.AddCommand(qrcodesCmd)
}
