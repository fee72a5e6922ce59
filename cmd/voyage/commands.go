package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/npratt/voyage/internal/carousel"
	"github.com/npratt/voyage/internal/catalog"
	"github.com/npratt/voyage/internal/config"
	"github.com/npratt/voyage/internal/shutdown"
	"github.com/npratt/voyage/internal/trips"
)

// newTripsClient creates the featured trips client from config.
func newTripsClient(cfg config.TripsConfig, logger *slog.Logger) *trips.Client {
	return trips.NewClient(cfg.APIURL, cfg.Timeout,
		trips.WithAssetBase(cfg.AssetBaseURL),
		trips.WithClientLogger(logger),
	)
}

// printTrips writes trips as an aligned table or as JSON.
func printTrips(w io.Writer, list []trips.Trip, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal trips: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No featured trips")
		return err
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		Headers("ID", "CATEGORY", "TITLE", "IMAGE")
	for _, t := range list {
		tbl.Row(t.ID, t.Category, t.Title, t.Image)
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

// carouselListing is the JSON shape of one carousel in `voyage slides`.
type carouselListing struct {
	Name        string           `json:"name"`
	Interval    string           `json:"interval"`
	ResumeDelay string           `json:"resume_delay"`
	Autoplay    bool             `json:"autoplay"`
	Slides      []carousel.Slide `json:"slides"`
}

func listCarousel(name string, cfg config.CarouselConfig, slides carousel.SlideSet) carouselListing {
	return carouselListing{
		Name:        name,
		Interval:    cfg.Interval.String(),
		ResumeDelay: cfg.ResumeDelay.String(),
		Autoplay:    cfg.Autoplay,
		Slides:      slides.Slides(),
	}
}

// printSlides writes both carousels with their timings.
func printSlides(w io.Writer, cfg *config.Config, asJSON bool) error {
	listings := []carouselListing{
		listCarousel("hero", cfg.Hero, catalog.HeroSlides()),
		listCarousel("homepage", cfg.Homepage, catalog.HomepageSlides()),
	}

	if asJSON {
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal slides: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for i, l := range listings {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		autoplay := "autoplay"
		if !l.Autoplay {
			autoplay = "manual"
		}
		_, _ = fmt.Fprintf(w, "%s (%s, every %s, resumes %s after input)\n", l.Name, autoplay, l.Interval, l.ResumeDelay)
		for j, s := range l.Slides {
			_, _ = fmt.Fprintf(w, "  %d. %s  %s\n", j+1, s.DisplayName, s.ResourceRef)
		}
	}
	return nil
}

// seedStore loads the seed file if one is configured, otherwise fills an
// empty store with the built-in catalog.
func seedStore(ctx context.Context, store *trips.Store, seedFile string, logger *slog.Logger) error {
	if seedFile != "" {
		list, err := trips.LoadSeedFile(seedFile)
		if err != nil {
			return err
		}
		if err := store.Seed(ctx, list); err != nil {
			return err
		}
		logger.Info("catalog seeded", "file", seedFile, "trips", len(list))
		return nil
	}

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults := trips.DefaultTrips()
	if err := store.Seed(ctx, defaults); err != nil {
		return err
	}
	logger.Info("catalog seeded with built-in trips", "trips", len(defaults))
	return nil
}

// runServe serves the trip catalog until ctx is cancelled or a signal arrives.
func runServe(ctx context.Context, cfg config.ServerConfig, logger *slog.Logger) error {
	store, err := trips.OpenStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := seedStore(ctx, store, cfg.SeedFile, logger); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return serveCatalog(ctx, ln, store, cfg.ShutdownTimeout, logger)
}

// serveCatalog serves store on ln with graceful shutdown.
func serveCatalog(ctx context.Context, ln net.Listener, store trips.Catalog, timeout time.Duration, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           trips.NewServer(store, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("trip catalog listening", "addr", ln.Addr().String())

	return shutdown.RunWithGracefulShutdown(
		ctx,
		logger,
		timeout,
		func(context.Context) error {
			if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
		func(shutdownCtx context.Context) error {
			return srv.Shutdown(shutdownCtx)
		},
	)
}
