package services

import (
	"context"
	"fmt"

	"league-history/chart"
	"league-history/logging"
)

// ChartService renders the season averages chart
type ChartService struct {
	league  *LeagueService
	options chart.Options
	logger  *logging.Logger
}

func NewChartService(league *LeagueService, options chart.Options) *ChartService {
	return &ChartService{
		league:  league,
		options: options,
		logger:  logging.WithPrefix("ChartService"),
	}
}

// Options returns the configured chart options
func (s *ChartService) Options() chart.Options {
	return s.options
}

// RenderAverages loads the league and renders the averages chart in format
func (s *ChartService) RenderAverages(ctx context.Context, format chart.Format) ([]byte, error) {
	view, err := s.league.Averages(ctx)
	if err != nil {
		return nil, err
	}
	return s.Render(view, format)
}

// Render draws an already computed averages view
func (s *ChartService) Render(view *AveragesView, format chart.Format) ([]byte, error) {
	data, err := chart.Render(format, view.Seasons, view.Series, view.Labels, s.options)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", format, err)
	}
	ChartRenders.WithLabelValues(string(format)).Inc()
	s.logger.Debugf("Rendered %s chart: %d seasons, %d series, %d bytes",
		format, len(view.Seasons), len(view.Series), len(data))
	return data, nil
}
