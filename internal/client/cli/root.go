package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/hikekeeper/internal/client/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format     string // "json" | "text"
	ConfigPath string
	Server     string
	DBPath     string
	Timeout    time.Duration

	factory AppFactory
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the hikectl root command. A nil factory uses NewApp.
func NewRootCommand(factory AppFactory) *cobra.Command {
	if factory == nil {
		factory = NewApp
	}
	opts := &RootOptions{factory: factory}

	cmd := &cobra.Command{
		Use:   "hikectl",
		Short: "HikeKeeper command-line client",
		Long:  "Record hikes offline and sync them to a HikeKeeper server.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to JSON config file")
	cmd.PersistentFlags().StringVarP(&opts.Server, "server", "s", "", "server gRPC address (host:port)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "local database file")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "deadline for remote calls")

	cmd.AddCommand(NewPingCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewHikesCommand(opts))

	return cmd
}

// loadConfig resolves defaults, the config file and the environment, then
// applies the flags the user set explicitly.
func (o *RootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerEndpointAddr = o.Server
	}
	if flags.Changed("db") {
		cfg.DatabasePath = o.DBPath
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = o.Timeout
	}
	return cfg, nil
}

// withApp builds the App for one command, runs fn under the request
// deadline and closes the App afterwards.
func (o *RootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) (err error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	app, err := o.factory(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(context.Background()); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ctx := cmd.Context()
	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	return fn(ctx, app)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
