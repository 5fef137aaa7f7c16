// Package qrcode renders the per-table QR codes that put the menu URL on
// each table.
package qrcode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	qrc "github.com/skip2/go-qrcode"
)

const imageSize = 256

// TableURL is the address a table's QR code points at.
func TableURL(baseURL, table string) string {
	return fmt.Sprintf("%s/mesa/%s", strings.TrimRight(baseURL, "/"), table)
}

// WriteTableCode renders one table's code as a PNG and returns its path.
func WriteTableCode(baseURL, table, folder string) (string, error) {
	path := filepath.Join(folder, fmt.Sprintf("mesa-%s-qrcode.png", table))
	if err := qrc.WriteFile(TableURL(baseURL, table), qrc.Medium, imageSize, path); err != nil {
		return "", fmt.Errorf("failed to write QR code for table %s: %w", table, err)
	}
	return path, nil
}

// WriteAll renders codes for tables 1..tableCount into folder.
func WriteAll(baseURL string, tableCount int, folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create QR output folder: %w", err)
	}
	for i := 1; i <= tableCount; i++ {
		if _, err := WriteTableCode(baseURL, fmt.Sprintf("%d", i), folder); err != nil {
			return err
		}
	}
	return nil
}
