// Package storage picks the list repository named by the configuration.
package storage

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"nestlist/internal/adapters/filesystem"
	"nestlist/internal/adapters/sqlite"
	"nestlist/internal/adapters/yamlfile"
	"nestlist/internal/config"
	"nestlist/internal/ports"
)

// DefaultListDir is where the files backend keeps lists when none is configured
func DefaultListDir() string {
	return filepath.Join(sqlite.DataDir(), "lists")
}

// Open opens the configured backend. The caller closes it.
func Open(cfg *config.Config, log logrus.FieldLogger) (ports.ListRepository, error) {
	if cfg.Storage == config.StorageFiles {
		dir := cfg.ListDir
		if dir == "" {
			dir = DefaultListDir()
		}
		repo := filesystem.NewRepository(dir, yamlfile.NewCodec(), log)
		if err := repo.Open(); err != nil {
			return nil, err
		}
		log.WithField("dir", repo.Dir()).Debug("using list files")
		return repo, nil
	}

	store := sqlite.NewStore(log)
	if err := store.Open(cfg.DBPath); err != nil {
		return nil, err
	}
	log.WithField("db", store.Path()).Debug("using sqlite")
	return store, nil
}
