package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"fintrack/internal/config"
	"fintrack/internal/database"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Options lets callers swap the process-level dependencies of the command tree.
type Options struct {
	Out io.Writer
	Err io.Writer

	// LoadConfig defaults to config.Load.
	LoadConfig func() *config.Config
	// OpenDB defaults to database.Initialize.
	OpenDB func(cfg *config.Config) (*gorm.DB, error)
}

type runtime struct {
	opts Options

	profilePath string
	output      string
	logLevel    string

	profile *Profile
	cfg     *config.Config
	logger  *slog.Logger
	app     *App
}

// NewRootCommand builds the ledgerctl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	if opts.OpenDB == nil {
		opts.OpenDB = database.Initialize
	}

	r := &runtime{opts: opts}

	rootCmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Operate the fintrack ledger from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when no subcommand is provided
			return cmd.Help()
		},
	}
	rootCmd.SetOut(opts.Out)
	rootCmd.SetErr(opts.Err)

	rootCmd.PersistentFlags().StringVarP(&r.profilePath, "config", "c", "", "Profile file (default is ~/.config/ledgerctl/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&r.output, "output", "o", "", "Output format: text or json")
	rootCmd.PersistentFlags().StringVar(&r.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newSeedRulesCmd(r),
		newCategorizeCmd(r),
		newImportCmd(r),
		newSyncCmd(r),
		newBalanceCmd(r),
		newTokenCmd(r),
		newSampleCSVCmd(r),
	)

	return rootCmd
}

func (r *runtime) init(cmd *cobra.Command) error {
	profile, err := LoadProfile(r.profilePath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		profile.Output = strings.ToLower(r.output)
		if profile.Output != OutputText && profile.Output != OutputJSON {
			return fmt.Errorf("unsupported output format %q", r.output)
		}
	}
	if cmd.Flags().Changed("log-level") {
		profile.LogLevel = r.logLevel
	}
	r.profile = profile

	level, err := log.ParseLevel(profile.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	handler := log.NewWithOptions(r.opts.Err, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledgerctl",
		Level:           level,
	})
	r.logger = slog.New(handler)

	r.cfg = r.opts.LoadConfig()
	return nil
}

// services opens the store on first use; sample-csv never needs it.
func (r *runtime) services() (*App, error) {
	if r.app != nil {
		return r.app, nil
	}

	db, err := r.opts.OpenDB(r.cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	r.app = NewApp(db, r.cfg, r.logger)
	return r.app, nil
}

func (r *runtime) ownerEmail(flagValue string) (string, error) {
	email := strings.TrimSpace(flagValue)
	if email == "" {
		email = strings.TrimSpace(r.profile.Owner)
	}
	if email == "" {
		return "", fmt.Errorf("owner email is required (--owner or LEDGERCTL_OWNER)")
	}
	return strings.ToLower(email), nil
}

// render writes v as indented JSON, or through text when the output format is text.
func (r *runtime) render(v any, text func(w io.Writer)) error {
	if r.profile.Output == OutputJSON {
		enc := json.NewEncoder(r.opts.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(r.opts.Out)
	return nil
}
