package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the wordbiter binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp"
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      getConfigDir(homeDir),
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, pr.configDir)

	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordbiter")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordbiter")
		}
		return filepath.Join(homeDir, ".config", "wordbiter")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordbiter")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordbiter")
	default:
		return filepath.Join(homeDir, ".wordbiter")
	}
}

// GetConfigPath resolves the config file path inside the config dir,
// creating the directory when needed.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if err := EnsureDir(pr.configDir); err != nil {
		log.Warnf("Cannot create config directory %s: %v", pr.configDir, err)
		return filepath.Join(pr.executableDir, filename), nil
	}
	return filepath.Join(pr.configDir, filename), nil
}

// DictionaryCandidates returns the ordered list of dictionary paths to
// try for a user-specified path (which may be empty).
// Order: the user path as given, the user path relative to the
// executable, then well-known word list locations.
func (pr *PathResolver) DictionaryCandidates(userSpecifiedPath string) []string {
	var candidates []string

	if userSpecifiedPath != "" {
		candidates = append(candidates, userSpecifiedPath)
		if !filepath.IsAbs(userSpecifiedPath) {
			candidates = append(candidates, filepath.Join(pr.executableDir, userSpecifiedPath))
			if cwd, err := os.Getwd(); err == nil {
				candidates = append(candidates, filepath.Join(cwd, userSpecifiedPath))
			}
		}
	}

	candidates = append(candidates,
		filepath.Join(pr.configDir, "words.txt"),
		filepath.Join(pr.executableDir, "dictionaries", "scrabble_words.txt"),
		filepath.Join(pr.executableDir, "dictionaries", "words_alpha.txt"),
		"/usr/share/dict/words",
	)
	return candidates
}
