package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Abderrahmane-Najib/KG-project/internal/config"
	"github.com/Abderrahmane-Najib/KG-project/internal/crawler"
	"github.com/Abderrahmane-Najib/KG-project/internal/extract"
	collyfetcher "github.com/Abderrahmane-Najib/KG-project/internal/fetcher/colly"
	"github.com/Abderrahmane-Najib/KG-project/internal/logging"
	"github.com/Abderrahmane-Najib/KG-project/internal/metrics"
	"github.com/Abderrahmane-Najib/KG-project/internal/ops"
	"github.com/Abderrahmane-Najib/KG-project/internal/sink"
	"github.com/Abderrahmane-Najib/KG-project/internal/snapshot"
	"github.com/Abderrahmane-Najib/KG-project/internal/state"
	pgstate "github.com/Abderrahmane-Najib/KG-project/internal/state/postgres"
)

func newCrawlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crawl",
		Short: "Runs the league/team/player extraction crawl",
		Long: `Fetches every configured league's standings, walks each team and
its squad, extracts profile, statistics, contract, achievement, and
injury fields, and appends the resulting rows to the CSV sinks. Teams
and players already recorded in the crawl state are skipped.`,
		RunE: runCrawl,
	}
}

func runCrawl(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()
	if cfg.Ops.Enabled {
		ops.NewServer(cfg.Ops.Port, logger.Named("ops")).Start(ctx)
	}

	teams, players, closeState, err := openState(ctx, cfg.State)
	if err != nil {
		return err
	}
	defer closeState()

	writer, err := sink.NewWriter(cfg.Output.NodeDir, cfg.Output.RelDir, logger.Named("sink"))
	if err != nil {
		return fmt.Errorf("init sinks: %w", err)
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil {
			logger.Warn("closing sinks failed", zap.Error(cerr))
		}
	}()

	snapshots, err := openSnapshots(ctx, cfg.Snapshot)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	fetcher := collyfetcher.New(collyfetcher.Config{
		BaseURL:        cfg.Crawler.BaseURL,
		UserAgent:      cfg.Crawler.UserAgent,
		AcceptLanguage: cfg.Crawler.AcceptLanguage,
		Timeout:        cfg.Crawler.Timeout(),
		DelayMin:       cfg.Crawler.DelayMin(),
		DelayMax:       cfg.Crawler.DelayMax(),
		Cooldown:       cfg.Crawler.Cooldown(),
	}, crawler.TimerPauser{}, snapshots, "runs/"+runID, logger.Named("fetch"))
	orch := crawler.NewOrchestrator(fetcher, teams, players, writer, cfg.Crawler.OneTeamPerLeague, runID, logger.Named("crawl"))

	if err := orch.Run(ctx, leaguesFromConfig(cfg.Leagues)); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run crawl: %w", err)
	}
	logger.Info("crawl finished")
	return nil
}

func openState(ctx context.Context, cfg config.StateConfig) (teams, players crawler.ProcessedSet, closeFn func(), err error) {
	if cfg.Backend == "postgres" {
		teamSet, err := pgstate.Open(ctx, pgstate.Config{DSN: cfg.DSN}, "teams")
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open team state: %w", err)
		}
		playerSet, err := pgstate.Open(ctx, pgstate.Config{DSN: cfg.DSN}, "players")
		if err != nil {
			teamSet.Close()
			return nil, nil, nil, fmt.Errorf("open player state: %w", err)
		}
		return teamSet, playerSet, func() {
			teamSet.Close()
			playerSet.Close()
		}, nil
	}

	teamSet, err := state.OpenFileSet(cfg.TeamsFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open team state: %w", err)
	}
	playerSet, err := state.OpenFileSet(cfg.PlayersFile)
	if err != nil {
		_ = teamSet.Close()
		return nil, nil, nil, fmt.Errorf("open player state: %w", err)
	}
	return teamSet, playerSet, func() {
		_ = teamSet.Close()
		_ = playerSet.Close()
	}, nil
}

func openSnapshots(ctx context.Context, cfg config.SnapshotConfig) (snapshot.Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.Backend == "gcs" {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("init gcs client: %w", err)
		}
		store, err := snapshot.NewGCS(client, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("init gcs snapshots: %w", err)
		}
		return store, nil
	}
	store, err := snapshot.NewLocal(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("init local snapshots: %w", err)
	}
	return store, nil
}

// leaguesFromConfig converts the configured league list, preserving its
// order.
func leaguesFromConfig(table []config.LeagueConfig) []crawler.League {
	leagues := make([]crawler.League, 0, len(table))
	for _, lc := range table {
		leagues = append(leagues, crawler.League{
			ID:      extract.LastSegment(lc.Path),
			Name:    lc.Name,
			Path:    lc.Path,
			Country: lc.Country,
		})
	}
	return leagues
}
