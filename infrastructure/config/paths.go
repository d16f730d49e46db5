package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultFile is the configuration file name looked up when --config is not given
const DefaultFile = "vlanaudit.yaml"

// SearchPaths returns the locations probed for the default configuration file, in order
func SearchPaths() []string {
	possiblePaths := []string{
		filepath.Join(".", DefaultFile),
	}

	if runtime.GOOS == "windows" {
		if appDataDir := os.Getenv("APPDATA"); appDataDir != "" {
			possiblePaths = append(possiblePaths, filepath.Join(appDataDir, "vlanaudit", DefaultFile))
		}
		if programDataDir := os.Getenv("ProgramData"); programDataDir != "" {
			possiblePaths = append(possiblePaths, filepath.Join(programDataDir, "vlanaudit", DefaultFile))
		}
		return possiblePaths
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		possiblePaths = append(possiblePaths, filepath.Join(userConfigDir, "vlanaudit", DefaultFile))
	}
	return append(possiblePaths, "/etc/vlanaudit/"+DefaultFile)
}

// Locate returns the first existing path from candidates
func Locate(candidates []string) (string, bool) {
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
