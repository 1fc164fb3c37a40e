package services

import "github.com/prometheus/client_golang/prometheus"

var (
	LeagueLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "league_history",
			Name:      "league_load_duration_seconds",
			Help:      "Time taken to load matches and managers from the data source.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
	LeagueLoadFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "league_history",
		Name:      "league_load_failures_total",
		Help:      "League loads that failed in either fetch.",
	})
	MatchesLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "league_history",
		Name:      "matches_loaded",
		Help:      "Match records returned by the most recent successful load.",
	})
	ChartRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "league_history",
		Name:      "chart_renders_total",
		Help:      "Averages chart renders by output format.",
	}, []string{"format"})
	AdminLogins = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "league_history",
		Name:      "admin_logins_total",
		Help:      "Admin login attempts by result.",
	}, []string{"result"})
	BallotsMailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "league_history",
		Name:      "ballots_mailed_total",
		Help:      "Rules vote ballots forwarded by email, by result.",
	}, []string{"result"})
)

func init() {
	prometheus.DefaultRegisterer.MustRegister(
		LeagueLoadDuration,
		LeagueLoadFailures,
		MatchesLoaded,
		ChartRenders,
		AdminLogins,
		BallotsMailed,
	)
}
