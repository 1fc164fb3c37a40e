package services

import (
	"context"
	"fmt"
	"time"

	"league-history/logging"
	"league-history/models"

	"golang.org/x/sync/errgroup"
)

// LeagueLoader fetches matches and managers in parallel and joins them into a League
type LeagueLoader struct {
	source LeagueSource
	logger *logging.Logger
}

func NewLeagueLoader(source LeagueSource) *LeagueLoader {
	return &LeagueLoader{
		source: source,
		logger: logging.WithPrefix("LeagueLoader"),
	}
}

// Source returns the underlying source
func (l *LeagueLoader) Source() LeagueSource {
	return l.source
}

// Load runs both fetches concurrently. If either fails the other is cancelled
// and the first error is returned; no partial league is ever returned.
func (l *LeagueLoader) Load(ctx context.Context) (*models.League, error) {
	start := time.Now()

	var matches []models.MatchRecord
	var managers []models.ManagerRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := l.source.LoadMatches(gctx)
		if err != nil {
			return fmt.Errorf("failed to load matches: %w", err)
		}
		matches = m
		return nil
	})
	g.Go(func() error {
		m, err := l.source.LoadManagers(gctx)
		if err != nil {
			return fmt.Errorf("failed to load managers: %w", err)
		}
		managers = m
		return nil
	})

	if err := g.Wait(); err != nil {
		LeagueLoadFailures.Inc()
		l.logger.Errorf("Load from %s failed: %v", l.source.Name(), err)
		return nil, err
	}

	elapsed := time.Since(start)
	LeagueLoadDuration.Observe(elapsed.Seconds())
	MatchesLoaded.Set(float64(len(matches)))
	l.logger.Debugf("Loaded %d matches and %d managers from %s in %s",
		len(matches), len(managers), l.source.Name(), elapsed)

	return &models.League{Matches: matches, Managers: managers}, nil
}
