// Package cmd implements the fincoach CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/fincoach/internal/advisor"
	"github.com/theirongolddev/fincoach/internal/config"
	"github.com/theirongolddev/fincoach/internal/content"
	"github.com/theirongolddev/fincoach/internal/session"
	"github.com/theirongolddev/fincoach/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagSession string
	flagVerbose bool
)

var nowFunc = time.Now

var rootCmd = &cobra.Command{
	Use:   "fincoach",
	Short: "Personal finance chat assistant",
	Long:  "Chat with a finance coach that adapts its budget and advice to whether you are a student or a working professional.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setupLogging(cfg)
		return nil
	},
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the session database")
	rootCmd.PersistentFlags().StringVarP(&flagSession, "session", "s", "", "Session ID to resume (default: most recent)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagSession != "" {
		cfg.General.SessionID = flagSession
	}
	return cfg, nil
}

func setupLogging(cfg config.Config) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		level = log.WarnLevel
	}
	if flagVerbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

// workspace is the shared state opened by every session-backed command.
type workspace struct {
	cfg     config.Config
	store   *store.Store
	content *content.Table
	session *session.Session
}

func (w *workspace) Close() error {
	return w.store.Close()
}

// openWorkspace opens the session database and restores the session named
// by --session or the config, falling back to the most recently used one.
// A fresh session is created when the store is empty.
func openWorkspace() (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	tbl, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	adv, err := advisor.New(tbl)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, err
	}

	id := cfg.General.SessionID
	if id == "" {
		id, err = st.LastSession()
		if err != nil {
			st.Close()
			return nil, err
		}
	}

	opts := session.Options{ID: id, Journal: st}
	if id != "" {
		if opts.Profile, err = st.LoadProfile(id); err != nil {
			st.Close()
			return nil, err
		}
		if opts.History, err = st.LoadHistory(id); err != nil {
			st.Close()
			return nil, err
		}
	}

	sess, err := session.New(adv, opts)
	if err != nil {
		st.Close()
		return nil, err
	}
	log.Debug("session opened", "session", sess.ID, "messages", len(sess.History), "profile", sess.Profile != nil)

	return &workspace{cfg: cfg, store: st, content: tbl, session: sess}, nil
}
