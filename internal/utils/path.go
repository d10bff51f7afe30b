package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// PathResolver finds the word list directory and the config file location
// relative to the running binary.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform config directory for wordpick.
func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordpick")
		}
		return filepath.Join(homeDir, ".config", "wordpick")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordpick")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordpick")
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordpick")
	default:
		return filepath.Join(homeDir, ".wordpick")
	}
}

// GetDataDir resolves the directory holding words_en.txt / words_ja.txt.
// Candidates, in order:
// 1. the given path as is (absolute, or relative to the working dir)
// 2. the given path relative to the executable
// 3. data/ next to the executable, in its parent, and in the config dir
// The first candidate with a usable word list wins. When none qualifies the
// given path is returned unchanged so the later load reports the real error.
func (pr *PathResolver) GetDataDir(userPath string) string {
	for _, path := range pr.dataDirCandidates(userPath) {
		if dictionary.HasWordLists(path) {
			log.Debugf("Found word lists in: %s", path)
			return path
		}
	}
	log.Debugf("No word list directory found for %q", userPath)
	return userPath
}

func (pr *PathResolver) dataDirCandidates(userPath string) []string {
	candidates := []string{userPath}
	if !filepath.IsAbs(userPath) {
		candidates = append(candidates, filepath.Join(pr.executableDir, userPath))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, "data"),
		filepath.Join(filepath.Dir(pr.executableDir), "data"),
		filepath.Join(pr.configDir, "data"),
	)
}

// GetConfigPath returns a writable location for filename, falling back from
// the config dir to ~/.wordpick, the temp dir and finally the executable dir.
func (pr *PathResolver) GetConfigPath(filename string) string {
	dirs := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, ".wordpick"),
		filepath.Join(os.TempDir(), "wordpick"),
		pr.executableDir,
	}
	for i, dir := range dirs {
		if res := CheckDirStatus(dir); res.Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
