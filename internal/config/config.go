package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"linksync/internal/domain"
)

const (
	DefaultDocumentPath = "design.yaml"
	DefaultLinkMargin   = 50.0

	BackendDocument = "document"
	BackendSQLite   = "sqlite"

	envPrefix = "LINKSYNC_"
)

// Config is the resolved application configuration
type Config struct {
	DocumentPath    string
	MetadataBackend string
	MetadataPath    string // sqlite database; empty means the XDG default
	Sync            domain.SyncConfig
	LinkMargin      float64
	LogVerbosity    int
	Editor          string // command used to edit the document; empty means $EDITOR
}

// DefaultFilePath returns the config file location under the XDG config directory
func DefaultFilePath() string {
	return filepath.Join(xdg.ConfigHome, "linksync", "config.yaml")
}

func defaults() map[string]any {
	m := map[string]any{
		"document":         DefaultDocumentPath,
		"metadata.backend": BackendDocument,
		"metadata.path":    "",
		"link.margin":      DefaultLinkMargin,
		"log.verbosity":    0,
		"editor":           "",
	}
	for _, g := range domain.AllGroups {
		m["sync."+string(g)] = true
	}
	return m
}

// Load merges defaults, the YAML file at path (skipped when missing) and
// LINKSYNC_ environment variables, in that order. An empty path uses
// DefaultFilePath.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file if it exists
	if path == "" {
		path = DefaultFilePath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	// 3. Environment, e.g. LINKSYNC_METADATA_BACKEND -> metadata.backend
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		DocumentPath:    k.String("document"),
		MetadataBackend: strings.ToLower(k.String("metadata.backend")),
		MetadataPath:    k.String("metadata.path"),
		Sync:            make(domain.SyncConfig, len(domain.AllGroups)),
		LinkMargin:      k.Float64("link.margin"),
		LogVerbosity:    k.Int("log.verbosity"),
		Editor:          k.String("editor"),
	}
	for _, g := range domain.AllGroups {
		cfg.Sync[g] = k.Bool("sync." + string(g))
	}

	switch cfg.MetadataBackend {
	case BackendDocument, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown metadata backend %q (want %s or %s)", cfg.MetadataBackend, BackendDocument, BackendSQLite)
	}
	if cfg.DocumentPath == "" {
		return nil, errors.New("document path is empty")
	}
	if cfg.LinkMargin < 0 {
		return nil, fmt.Errorf("link margin must not be negative, got %v", cfg.LinkMargin)
	}

	return cfg, nil
}
