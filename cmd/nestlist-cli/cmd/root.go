package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nestlist/internal/adapters/storage"
	"nestlist/internal/config"
	"nestlist/internal/ports"
)

var (
	cfgFile  string
	dbPath   string
	listDir  string
	listName string
	logLevel string

	cfg  *config.Config
	log  *logrus.Logger
	repo ports.ListRepository
)

var rootCmd = &cobra.Command{
	Use:   "nestlist-cli",
	Short: "CLI for managing nested lists",
	Long: `nestlist-cli manages two-level lists: top-level items that may hold
children, and children that hold nothing.

It provides commands to show, create, move, rename, delete, search,
import and export items. Moves follow the same drop rules as dragging
in the nestlist TUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo == nil {
			return nil
		}
		err := repo.Close()
		repo = nil
		return err
	},
}

func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage = config.StorageSQLite
		cfg.DBPath = dbPath
	}
	if flags.Changed("dir") {
		cfg.Storage = config.StorageFiles
		cfg.ListDir = listDir
	}
	if flags.Changed("list") {
		cfg.List = listName
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	log, err = config.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	repo, err = storage.Open(cfg, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"storage": cfg.Storage, "list": cfg.List}).Debug("ready")
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/nestlist/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database (default from config or $NESTLIST_DB)")
	rootCmd.PersistentFlags().StringVar(&listDir, "dir", "", "keep lists as YAML files in this directory instead of the database")
	rootCmd.MarkFlagsMutuallyExclusive("db", "dir")
	rootCmd.PersistentFlags().StringVarP(&listName, "list", "l", "", "list to work on (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// GetRepo returns the initialized repository
func GetRepo() ports.ListRepository {
	return repo
}

// List returns the list selected by flag or config
func List() string {
	return cfg.List
}
