package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/cmd/interviewflow/tui"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/client"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/config"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/dashboard"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/notion"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/session"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/store"
)

var (
	verbose    bool
	loginEmail string
	cfg        config.Config
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "interviewflow",
	Short: "Terminal client for the InterviewFlow job-application tracker",
	Long: `InterviewFlow is a terminal client for tracking job applications:
list, search, filter and sort your applications, manage them through an
add/edit form, attach resumes, and keep an offline snapshot for when the
backend is unreachable.

Run without arguments to open the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg = config.FromEnv()

		// The interactive dashboard owns the terminal, so its logs go to a
		// file instead of stderr.
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if cmd.CalledAs() == "interviewflow" {
			logger, err = buildFileLogger(zc, cfg.CachePath+".log")
		} else {
			logger, err = zc.Build()
		}
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessions().Get()
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				fmt.Println("Not logged in. Run `interviewflow login` first.")
				return nil
			}
			return err
		}

		api := client.New(cfg.APIBaseURL, sess.Token, logger)
		vm := dashboard.NewViewModel(api.Applications(), openSnapshot(), alwaysConfirm(), logger)

		// The TUI gets its own yes/no modal before Remove, so the
		// view-model's confirmer is pre-satisfied here.
		p := tea.NewProgram(tui.New(vm, api, sess.User, logger), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewReader(os.Stdin)
		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			line, _ := in.ReadString('\n')
			email = strings.TrimSpace(line)
		}
		fmt.Print("Password: ")
		line, _ := in.ReadString('\n')
		password := strings.TrimSpace(line)

		ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
		defer cancel()
		sess, err := client.New(cfg.APIBaseURL, "", logger).Auth().Login(ctx, email, password)
		if err != nil {
			return err
		}
		if err := sessions().Save(sess); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", sess.User.UserName)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessions().Clear()
	},
}

var (
	listSearch string
	listStatus string
	listSort   string
	listDesc   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the application list once (for scripting)",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessions().Get()
		if err != nil {
			return err
		}
		api := client.New(cfg.APIBaseURL, sess.Token, logger)
		vm := dashboard.NewViewModel(api.Applications(), openSnapshot(), alwaysConfirm(), logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
		defer cancel()
		vm.Load(ctx, sess.User.ID)
		if msg := vm.ErrMsg(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		if vm.Stale() {
			fmt.Fprintln(os.Stderr, "showing offline snapshot")
		}

		dir := dashboard.Ascending
		if listDesc {
			dir = dashboard.Descending
		}
		projected := vm.Project(dashboard.Query{
			Search:    listSearch,
			Status:    listStatus,
			SortKey:   dashboard.SortKey(listSort),
			Direction: dir,
		})
		for _, rec := range projected {
			fmt.Printf("%-30s %-24s %-12s %s\n",
				rec.Position, rec.Company, rec.DateApplied.Format("2006-01-02"), rec.Status)
		}
		s := vm.Stats()
		fmt.Printf("\ntotal %d · applied %d · interviews %d · offers %d · rejected %d\n",
			s.Total, s.Applied, s.Interviews, s.Offers, s.Rejected)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Mirror the application list into a Notion database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.NotionToken == "" || cfg.NotionDBID == "" {
			return errors.New("NOTION_TOKEN and NOTION_DB_ID must be set")
		}
		sess, err := sessions().Get()
		if err != nil {
			return err
		}
		api := client.New(cfg.APIBaseURL, sess.Token, logger)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()
		records, err := api.Applications().List(ctx, sess.User.ID)
		if err != nil {
			return fmt.Errorf("list applications: %w", err)
		}

		nc := notion.New(cfg.NotionToken, cfg.NotionDBID)
		if err := nc.Ping(ctx); err != nil {
			return fmt.Errorf("notion ping: %w", err)
		}
		n, err := nc.ExportAll(ctx, records)
		if err != nil {
			return fmt.Errorf("exported %d of %d: %w", n, len(records), err)
		}
		fmt.Printf("Exported %d application(s)\n", n)
		return nil
	},
}

// buildFileLogger points the logger at path, creating the state directory
// first: on a fresh machine nothing else has made it yet.
func buildFileLogger(zc zap.Config, path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = zc.OutputPaths
	return zc.Build()
}

func sessions() *session.FileStore { return session.NewFileStore(cfg.SessionPath) }

// openSnapshot is best-effort: a broken cache file disables the offline
// fallback instead of failing the command.
func openSnapshot() dashboard.Snapshot {
	db, err := store.Open(cfg.CachePath)
	if err != nil {
		logger.Warn("open snapshot cache failed", zap.Error(err))
		return nil
	}
	st := store.New(db)
	if err := st.Migrate(context.Background()); err != nil {
		logger.Warn("migrate snapshot cache failed", zap.Error(err))
		_ = db.Close()
		return nil
	}
	return st
}

func alwaysConfirm() dashboard.Confirmer {
	return dashboard.ConfirmerFunc(func(string) bool { return true })
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	listCmd.Flags().StringVar(&listSearch, "search", "", "substring match on position/company/location")
	listCmd.Flags().StringVar(&listStatus, "status", dashboard.StatusFilterAll, "status code or \"all\"")
	listCmd.Flags().StringVar(&listSort, "sort", string(dashboard.SortByDateApplied), "dateApplied|company|position|status")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")

	rootCmd.AddCommand(loginCmd, logoutCmd, listCmd, exportCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
