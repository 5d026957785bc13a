package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerpath/internal/config"
	"github.com/abhisek/careerpath/internal/logger"
	"github.com/abhisek/careerpath/internal/model"
	"github.com/abhisek/careerpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "careerpath",
	Short:         "Career coaching from diagnosis to portfolio",
	Long:          "careerpath turns a short career diagnosis into a learning roadmap, tracks module study and assembles a portfolio from it.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a careerpath.yaml config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAREERPATH_DB env var)")
	rootCmd.PersistentFlags().String("store", "", "Storage backend: sqlite, redis or memory")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command works against.
type env struct {
	cfg   *config.Config
	log   *logger.Logger
	store *store.Store
	loc   *time.Location
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", "error", err)
	}
	e.log.Sync()
}

// openEnv loads configuration with flag overrides, then builds the logger and
// opens the store.
func openEnv(cmd *cobra.Command) (*env, error) {
	file, _ := cmd.Flags().GetString("config")
	dbPath, _ := cmd.Flags().GetString("db")
	driver, _ := cmd.Flags().GetString("store")
	level, _ := cmd.Flags().GetString("log-level")

	if dbPath != "" {
		if err := store.EnsureDir(dbPath); err != nil {
			return nil, fmt.Errorf("prepare database directory: %w", err)
		}
	}

	cfg, err := config.Load(file, map[string]string{
		"store.path":   dbPath,
		"store.driver": driver,
		"log.level":    level,
	})
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Console: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cmd.Context(), cfg.StoreConfig())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "driver", cfg.Store.Driver)

	return &env{cfg: cfg, log: log, store: s, loc: loc}, nil
}

// userID returns the logged-in user's id, or a fixed anonymous id.
func (e *env) userID(ctx context.Context) (string, error) {
	u, err := e.store.SessionRepo().CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if u == nil {
		return anonymousUser, nil
	}
	return u.ID, nil
}

// roadmap loads the stored roadmap. A missing roadmap is an error here.
func (e *env) roadmap(cmd *cobra.Command) (*model.Roadmap, error) {
	rm, err := e.store.RoadmapRepo().Get(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if rm == nil {
		return nil, errNoRoadmap
	}
	return rm, nil
}
