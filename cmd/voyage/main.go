package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/voyage/internal/catalog"
	"github.com/npratt/voyage/internal/config"
	"github.com/npratt/voyage/internal/trips"
	"github.com/npratt/voyage/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	rootCmd := newRootCmd(viper.GetViper(), logger, logLevel)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags are bound to v.
func newRootCmd(v *viper.Viper, logger *slog.Logger, logLevel *slog.LevelVar) *cobra.Command {
	v.SetEnvPrefix("VOYAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "voyage",
		Short: "Travel landing page in your terminal",
		Long: `voyage renders a travel agency landing page in the terminal: a Hero
carousel of destinations, a rotating Homepage slideshow and the featured
trips served by the voyage catalog backend.

Both carousels advance on their own. Navigating by hand pauses autoplay,
which resumes after a short quiet period.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if v.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .voyage/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "TUI log file path")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})

	// loadConfig loads config files and applies explicitly set flags.
	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		cfg, err := config.LoadConfig(v)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}

		// Apply CLI flag overrides (only if explicitly set)
		flags := cmd.Flags()
		if flags.Changed(FlagLogFile) {
			cfg.Paths.Log, _ = flags.GetString(FlagLogFile)
		}
		if f := flags.Lookup(FlagAPIURL); f != nil && f.Changed {
			cfg.Trips.APIURL = f.Value.String()
		}
		if f := flags.Lookup(FlagCategory); f != nil && f.Changed {
			cfg.Trips.Category = f.Value.String()
		}
		if f := flags.Lookup(FlagAddr); f != nil && f.Changed {
			cfg.Server.Addr = f.Value.String()
		}
		if f := flags.Lookup(FlagDB); f != nil && f.Changed {
			cfg.Server.DBPath = f.Value.String()
		}
		if f := flags.Lookup(FlagSeed); f != nil && f.Changed {
			cfg.Server.SeedFile = f.Value.String()
		}
		return cfg, nil
	}

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "voyage %s\n", version)
		},
	}

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Show the landing page",
		Long: `Show the Hero carousel, the Homepage slideshow and the featured trips.

Keys: tab switches carousel, ←/→ navigate, 1-9 jump, space pauses or
resumes autoplay, r reloads trips, q quits.

Without a terminal (or with --plain) slide changes are printed line by line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			plain, _ := cmd.Flags().GetBool(FlagPlain)
			tuiEnabled := !plain && term.IsTerminal(int(os.Stdout.Fd()))

			// TUI mode: redirect logger to file so it does not corrupt the screen
			appLogger := logger
			if tuiEnabled {
				logResult, err := SetupTUILogger(cfg.Paths.Log, logLevel, cfg.LogRotation)
				if err != nil {
					return err
				}
				defer func() { _ = logResult.Close() }()
				appLogger = logResult.Logger
				slog.SetDefault(appLogger)
			}

			client := newTripsClient(cfg.Trips, appLogger)

			app := tui.New(
				tui.CarouselSpec{
					Title:    "Hero",
					Slides:   catalog.HeroSlides(),
					Preset:   cfg.Hero.Preset("hero"),
					Autoplay: cfg.Hero.Autoplay,
				},
				tui.CarouselSpec{
					Title:    "Homepage",
					Slides:   catalog.HomepageSlides(),
					Preset:   cfg.Homepage.Preset("homepage"),
					Autoplay: cfg.Homepage.Autoplay,
				},
				tui.WithFetcher(client, cfg.Trips.Category),
				tui.WithLogger(appLogger),
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithPlain(!tuiEnabled),
			)

			appLogger.Info("voyage starting",
				"version", version,
				"tui", tuiEnabled,
				"api_url", cfg.Trips.APIURL,
			)
			return app.Run(cmd.Context())
		},
	}
	browseCmd.Flags().Bool(FlagPlain, false, "Print slide changes line by line instead of the full screen UI")
	browseCmd.Flags().String(FlagAPIURL, "", "Trip catalog base URL")
	browseCmd.Flags().String(FlagCategory, "", "Only show featured trips in this category")

	// Trips command
	tripsCmd := &cobra.Command{
		Use:   "trips",
		Short: "List featured trips",
		Long: `Fetch the featured trips from the catalog backend and print them.

By default an unreachable backend prints an empty list, as the landing page
would. Use --strict to fail instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			client := newTripsClient(cfg.Trips, logger)
			strict, _ := cmd.Flags().GetBool(FlagStrict)

			var list []trips.Trip
			if strict {
				list, err = client.Fetch(cmd.Context(), cfg.Trips.Category)
				if err != nil {
					return err
				}
			} else {
				list = client.Featured(cmd.Context(), cfg.Trips.Category)
			}

			asJSON, _ := cmd.Flags().GetBool(FlagJSON)
			return printTrips(cmd.OutOrStdout(), list, asJSON)
		},
	}
	tripsCmd.Flags().String(FlagAPIURL, "", "Trip catalog base URL")
	tripsCmd.Flags().String(FlagCategory, "", "Only list trips in this category")
	tripsCmd.Flags().Bool(FlagStrict, false, "Fail when the backend cannot be reached")
	tripsCmd.Flags().Bool(FlagJSON, false, "Output trips as JSON")

	// Slides command
	slidesCmd := &cobra.Command{
		Use:   "slides",
		Short: "List the carousel slides and timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool(FlagJSON)
			return printSlides(cmd.OutOrStdout(), cfg, asJSON)
		},
	}
	slidesCmd.Flags().Bool(FlagJSON, false, "Output slides as JSON")

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the trip catalog backend",
		Long: `Serve the featured trip catalog over HTTP from a SQLite database.

Routes:
  GET /api/trips[?category=...]
  GET /api/trips/{id}
  GET /healthz

With --seed the YAML seed file is loaded into the database at startup.
An empty database without a seed file gets the built-in catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg.Server, logger)
		},
	}
	serveCmd.Flags().String(FlagAddr, "", "Listen address (default :8080)")
	serveCmd.Flags().String(FlagDB, "", "SQLite database path")
	serveCmd.Flags().String(FlagSeed, "", "YAML seed file loaded at startup")

	// Register all commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(tripsCmd)
	rootCmd.AddCommand(slidesCmd)
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}
