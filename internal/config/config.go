package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultList     = "inbox"
	DefaultLogLevel = "warn"
	envPrefix       = "NESTLIST"

	StorageSQLite = "sqlite"
	StorageFiles  = "files"
)

// Drag holds the drop-target rendering options of the board
type Drag struct {
	TargetsOnlyWhileDragging bool
	TargetSize               int
}

// Config is the resolved configuration shared by all entrypoints
type Config struct {
	Storage  string // sqlite or files
	DBPath   string
	ListDir  string // directory of list files for the files backend
	List     string
	LogLevel string
	Editor   string
	Drag     Drag
	File     string // config file that was read, empty if none
}

// Load reads cfgFile, or config.yaml from the default config directory when
// cfgFile is empty. A missing default file is not an error. Environment
// variables prefixed with NESTLIST_ override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// NESTLIST_DB is the short form people actually type.
	v.BindEnv("db_path", envPrefix+"_DB_PATH", envPrefix+"_DB")

	v.SetDefault("storage", StorageSQLite)
	v.SetDefault("db_path", "")
	v.SetDefault("list_dir", "")
	v.SetDefault("list", DefaultList)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("editor", os.Getenv("EDITOR"))
	v.SetDefault("drag.targets_only_while_dragging", true)
	v.SetDefault("drag.target_size", 1)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Storage:  strings.ToLower(v.GetString("storage")),
		DBPath:   v.GetString("db_path"),
		ListDir:  v.GetString("list_dir"),
		List:     v.GetString("list"),
		LogLevel: v.GetString("log_level"),
		Editor:   v.GetString("editor"),
		Drag: Drag{
			TargetsOnlyWhileDragging: v.GetBool("drag.targets_only_while_dragging"),
			TargetSize:               v.GetInt("drag.target_size"),
		},
		File: v.ConfigFileUsed(),
	}
	if cfg.Drag.TargetSize < 1 {
		cfg.Drag.TargetSize = 1
	}
	if cfg.Storage != StorageSQLite && cfg.Storage != StorageFiles {
		return nil, fmt.Errorf("invalid storage %q: want %s or %s", cfg.Storage, StorageSQLite, StorageFiles)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// Dir returns $XDG_CONFIG_HOME/nestlist, falling back to ~/.config/nestlist
func Dir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "nestlist")
}

// NewLogger builds a text logger at level writing to out
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logger, nil
}

// NewFileLogger is NewLogger writing to path, appending. The caller closes
// the returned file.
func NewFileLogger(level, path string) (*logrus.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger, err := NewLogger(level, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
