// Package toml implements the file-backed record store: accounts, the
// session pointer, and per-user health histories, each as a versioned
// TOML document under the data directory.
package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	dataDirKey      = "data.dir"
	dataDirName     = ".healthwise"
	recordFileMode  = 0o600
	recordDirMode   = 0o700
	tempFilePattern = ".record-*.toml.tmp"

	accountsFileName = "accounts.toml"
	sessionFileName  = "session.toml"
	historyDirName   = "history"
)

// ResolveDataDir reads the data directory from config, defaulting to
// ~/.healthwise. All three repositories share it.
func ResolveDataDir(cfg *viper.Viper) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	defaultDir := filepath.Join(homeDir, dataDirName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(defaultDir)
	cfg.SetDefault(dataDirKey, defaultDir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return "", fmt.Errorf("read config file: %w", err)
		}
	}

	dataDir := cfg.GetString(dataDirKey)
	if dataDir == "" {
		return "", errors.New("data directory is empty")
	}

	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}

	return filepath.Clean(absDir), nil
}

// One lock per record file, shared across repository instances pointing
// at the same path.
var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// readRecordFile decodes the document at path into out. A missing file
// is not an error: out is left at its zero value.
func readRecordFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read record file: %w", err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode record file %s: %w", filepath.Base(path), err)
	}

	return nil
}

// writeRecordFile encodes the document and replaces path atomically via
// a temp file in the same directory.
func writeRecordFile(path string, doc any) error {
	if err := os.MkdirAll(filepath.Dir(path), recordDirMode); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode record file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp record file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp record file: %w", err)
	}

	if err := tempFile.Chmod(recordFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp record file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp record file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace record file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, recordFileMode); err != nil {
		return fmt.Errorf("chmod record file: %w", err)
	}

	return nil
}

// fileNameForUser maps a username onto a history file name, rejecting
// anything that would escape the history directory.
func fileNameForUser(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "", errors.New("username is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if cleaned != trimmed || filepath.IsAbs(cleaned) || strings.ContainsAny(cleaned, `/\`) || cleaned == "." || cleaned == ".." {
		return "", fmt.Errorf("invalid username %q", username)
	}

	return cleaned + ".toml", nil
}
