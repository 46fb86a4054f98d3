package cli

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"
)

func getJournalDir() string {
	// Try current directory first
	if _, err := os.Stat("journal"); err == nil {
		return "journal"
	}

	// Try relative to executable
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "journal")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}

	// Default to journal in current directory
	return "journal"
}

func generateToken() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "vt_" + hex.EncodeToString(bytes), nil
}

func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
