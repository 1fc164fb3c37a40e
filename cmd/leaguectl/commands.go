package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"league-history/chart"
	"league-history/config"
	"league-history/database"
	"league-history/logging"
	"league-history/services"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logging.Configure(cfg.ToLoggingConfig(), logging.FileConfig{}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSource builds the configured league source. The returned close
// function releases the database connection, if one was opened.
func openSource(ctx context.Context, cfg *config.Config) (services.LeagueSource, func(), error) {
	if !cfg.UsesMongo() {
		source, err := services.NewLeagueSource(cfg.ToSourceConfig(), nil, nil)
		return source, func() {}, err
	}

	db, err := database.NewMongoConnection(ctx, cfg.ToDatabaseConfig())
	if err != nil {
		return nil, nil, err
	}
	source, err := services.NewLeagueSource(cfg.ToSourceConfig(),
		database.NewMongoMatchRepository(ctx, db),
		database.NewMongoManagerRepository(ctx, db))
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return source, func() { db.Close() }, nil
}

func newLeagueService(cfg *config.Config, source services.LeagueSource) *services.LeagueService {
	return services.NewLeagueService(services.NewLeagueLoader(source), cfg.ToPlacementRules(), cfg.League.Name)
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Replace the MongoDB league collections with data/matches.json and data/managers.json",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "directory containing data/matches.json and data/managers.json",
				EnvVars: []string{"DATA_DIR"},
				Value:   ".",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := c.Context

			db, err := database.NewMongoConnection(ctx, cfg.ToDatabaseConfig())
			if err != nil {
				return err
			}
			defer db.Close()

			importer := services.NewLeagueImportService(
				database.NewMongoMatchRepository(ctx, db),
				database.NewMongoManagerRepository(ctx, db),
			)
			result, err := importer.ImportDir(ctx, c.String("data-dir"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Imported %d matches and %d managers from %s\n",
				result.Matches, result.Managers, result.Source)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the configured source to a timestamped snapshot directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out-dir",
				Usage: "directory the snapshot is created in",
				Value: "exports",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, closeSource, err := openSource(c.Context, cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			result, err := services.NewLeagueExportService(c.String("out-dir")).Export(c.Context, source)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Exported %d matches and %d managers to %s\n",
				result.Matches, result.Managers, result.Dir)
			return nil
		},
	}
}

func chartCommand() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "Render the season averages chart to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "output file, - for stdout",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "svg or png",
				Value: string(chart.FormatSVG),
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "chart width in pixels (default CHART_WIDTH)",
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "chart height in pixels (default CHART_HEIGHT)",
			},
		},
		Action: func(c *cli.Context) error {
			format, err := chart.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := cfg.ToChartOptions()
			if w := c.Int("width"); w > 0 {
				opts.Width = float64(w)
			}
			if h := c.Int("height"); h > 0 {
				opts.Height = float64(h)
			}
			if 2*opts.Padding >= opts.Width || 2*opts.Padding >= opts.Height {
				return fmt.Errorf("chart padding %.0f does not fit a %.0fx%.0f chart", opts.Padding, opts.Width, opts.Height)
			}

			source, closeSource, err := openSource(c.Context, cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			charts := services.NewChartService(newLeagueService(cfg, source), opts)
			data, err := charts.RenderAverages(c.Context, format)
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "-" {
				_, err = c.App.Writer.Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Fprintf(c.App.ErrWriter, "Wrote %d byte %s chart to %s\n", len(data), format, out)
			return nil
		},
	}
}

func hallOfFameCommand() *cli.Command {
	return &cli.Command{
		Name:  "hall-of-fame",
		Usage: "Print season accolades and all-time records",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print JSON instead of text",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, closeSource, err := openSource(c.Context, cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			hof, err := newLeagueService(cfg, source).HallOfFame(c.Context)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(hof)
			}
			printHallOfFame(c.App.Writer, hof)
			return nil
		},
	}
}

func hashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		ArgsUsage: "[password]",
		Action: func(c *cli.Context) error {
			password := c.Args().First()
			if password == "" {
				line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			hash, err := services.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, hash)
			return nil
		},
	}
}

func name(labels map[string]string, id string) string {
	if id == "" {
		return "Unknown"
	}
	if label, ok := labels[id]; ok && label != "" {
		return label
	}
	return id
}

func printHallOfFame(w io.Writer, hof *services.HallOfFame) {
	labels := hof.Labels
	fmt.Fprintf(w, "%s Hall of Fame\n", hof.LeagueName)
	for _, s := range hof.Seasons {
		fmt.Fprintf(w, "\nSeason %s\n", s.Season)
		fmt.Fprintf(w, "  Champion: %s\n", name(labels, s.Accolades.ChampionID))
		fmt.Fprintf(w, "  Highest Scorer: %s (%g pts)\n", name(labels, s.Accolades.HighestScorerID), s.Accolades.HighestPoints)
		fmt.Fprintf(w, "  Best Regular Season Record: %s (%d-%d)\n",
			name(labels, s.RegularSeason.TopManagerID), s.RegularSeason.MaxWins, s.RegularSeason.TopManagerLosses)
		if s.BestAverage.Found() {
			fmt.Fprintf(w, "  Highest Season Average: %s (%.2f pts)\n", name(labels, s.BestAverage.ManagerID), s.BestAverage.Average)
		} else {
			fmt.Fprintln(w, "  Highest Season Average: Unknown (N/A pts)")
		}
	}

	fmt.Fprintln(w, "\nAll Time Stats")
	fmt.Fprintf(w, "  Most Wins: %s (%d)\n", name(labels, hof.AllTime.TopWinsManagerID), hof.AllTime.TopWins)
	high := hof.AllTime.GameHigh
	fmt.Fprintf(w, "  Highest Single Game: %s (%g pts, Season %s, Week %d)\n", name(labels, high.ManagerID), high.Points, high.Season, high.Week)
	if hof.HighestAverage.Found() {
		fmt.Fprintf(w, "  Highest Season Average: %s (%.2f pts, Season %s)\n",
			name(labels, hof.HighestAverage.ManagerID), hof.HighestAverage.Average, hof.HighestAverage.Season)
	}
	if streak := hof.LongestStreak; streak != nil {
		fmt.Fprintf(w, "  Longest Winning Streak: %s (%d wins, from Season %s Week %d to Season %s Week %d)\n",
			name(labels, streak.ManagerID), streak.Length, streak.StartSeason, streak.StartWeek, streak.EndSeason, streak.EndWeek)
	}
}
