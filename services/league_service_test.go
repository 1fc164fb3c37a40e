package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-history/stats"
)

func newTestService() *LeagueService {
	return NewLeagueService(fakeLoader{league: testLeague()}, nil, "Test League")
}

func TestHallOfFame(t *testing.T) {
	hof, err := newTestService().HallOfFame(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Test League", hof.LeagueName)
	require.Len(t, hof.Seasons, 2)

	latest := hof.Seasons[0]
	assert.Equal(t, "2021", latest.Season)
	assert.Equal(t, "carol", latest.Accolades.ChampionID)
	assert.Equal(t, "bob", latest.Accolades.HighestScorerID)
	assert.Equal(t, 140.0, latest.Accolades.HighestPoints)
	assert.Equal(t, stats.RegularSeasonRecord{TopManagerID: "bob", MaxWins: 1, TopManagerLosses: 1}, latest.RegularSeason)
	assert.Equal(t, "bob", latest.BestAverage.ManagerID)
	assert.InDelta(t, 113.33, latest.BestAverage.Average, 0.01)

	first := hof.Seasons[1]
	assert.Equal(t, "2020", first.Season)
	assert.Equal(t, "alice", first.Accolades.ChampionID)
	assert.Equal(t, 130.0, first.Accolades.HighestPoints)
	assert.Equal(t, 15, first.Accolades.HighestWeek)
	assert.Equal(t, stats.RegularSeasonRecord{TopManagerID: "alice", MaxWins: 2}, first.RegularSeason)
	assert.InDelta(t, 108.75, first.BestAverage.Average, 0.001)

	assert.Equal(t, "alice", hof.AllTime.TopWinsManagerID)
	assert.Equal(t, 2, hof.AllTime.TopWins)
	assert.Equal(t, stats.GameHigh{Points: 140, ManagerID: "bob", Season: "2021", Week: 1}, hof.AllTime.GameHigh)
	assert.Equal(t, "2021", hof.HighestAverage.Season)

	require.NotNil(t, hof.LongestStreak)
	assert.Equal(t, stats.WinStreak{
		ManagerID:   "alice",
		Length:      2,
		StartSeason: "2020",
		StartWeek:   1,
		EndSeason:   "2020",
		EndWeek:     2,
	}, *hof.LongestStreak)
	assert.Equal(t, "alice", hof.Labels["alice"])
}

func TestHallOfFameLoadFailure(t *testing.T) {
	service := NewLeagueService(fakeLoader{err: errBoom}, nil, "")
	_, err := service.HallOfFame(context.Background())
	assert.ErrorIs(t, err, errBoom)
}

func TestAverages(t *testing.T) {
	view, err := newTestService().Averages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"2020", "2021"}, view.Seasons)
	require.Len(t, view.Series, 4)
	ids := make([]string, 0, len(view.Series))
	for _, series := range view.Series {
		ids = append(ids, series.ID)
	}
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, ids)
	assert.InDelta(t, 108.75, view.Series[0].Values["2020"], 0.001)
	_, hasBye := view.Series[0].Values["bye"]
	assert.False(t, hasBye)

	dave := view.Rows[3]
	assert.Equal(t, "dave", dave.ManagerID)
	require.Len(t, dave.Cells, 2)
	assert.False(t, dave.Cells[0].Present)
	assert.True(t, dave.Cells[1].Present)
	assert.Equal(t, 60.0, dave.Cells[1].Average)
}

func TestCompare(t *testing.T) {
	service := newTestService()

	t.Run("two managers", func(t *testing.T) {
		view, err := service.Compare(context.Background(), "alice", " bob ")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, view.Managers)
		require.True(t, view.Selected())
		require.Len(t, view.Summary.Matches, 3)
		assert.Equal(t, "2021", view.Summary.Matches[0].Season)
		assert.Equal(t, 2, view.Summary.WinsA)
		assert.Equal(t, 1, view.Summary.WinsB)
		assert.InDelta(t, 115.0, view.Summary.AverageB, 0.001)
	})

	t.Run("never met", func(t *testing.T) {
		view, err := service.Compare(context.Background(), "bob", "dave")
		require.NoError(t, err)
		require.True(t, view.Selected())
		assert.False(t, view.Summary.HasMatches())
	})

	t.Run("same manager is not a comparison", func(t *testing.T) {
		view, err := service.Compare(context.Background(), "alice", "alice")
		require.NoError(t, err)
		assert.False(t, view.Selected())
	})

	t.Run("missing selection", func(t *testing.T) {
		view, err := service.Compare(context.Background(), "", "bob")
		require.NoError(t, err)
		assert.False(t, view.Selected())
		assert.Len(t, view.Managers, 4)
	})
}

func TestManagers(t *testing.T) {
	view, err := newTestService().Managers(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Active, 2)
	assert.Equal(t, "alice", view.Active[0].Name)
	assert.Equal(t, "bob", view.Active[1].Name)
	require.Len(t, view.Inactive, 1)
	assert.Equal(t, "carol", view.Inactive[0].Name)
}

func TestManagerProfile(t *testing.T) {
	service := newTestService()

	profile, err := service.ManagerProfile(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice Army", profile.Manager.TeamName)
	assert.Equal(t, CareerRecord{Wins: 2, Losses: 1, Ties: 1, Average: 96}, profile.Career)
	assert.Equal(t, []stats.SeasonFinish{{Season: "2021", Place: 3}, {Season: "2020", Place: 1}}, profile.Finishes)
	assert.Equal(t, []stats.Placement{
		{Place: 1, Seasons: []string{"2020"}},
		{Place: 3, Seasons: []string{"2021"}},
	}, profile.Placements)
	assert.Equal(t, "2020", profile.BestSeason.Season)

	_, err = service.ManagerProfile(context.Background(), "dave")
	assert.True(t, errors.Is(err, ErrManagerNotFound))
}

func TestSeasons(t *testing.T) {
	seasons, err := newTestService().Seasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2021", "2020"}, seasons)
}
