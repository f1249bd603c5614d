package series_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/umpire/pkg/umpire/series"
)

func newSeries(t *testing.T, config series.Config) (*series.Series, *bytes.Buffer) {
	t.Helper()

	s, err := series.New(config)
	require.NoError(t, err)

	var out bytes.Buffer
	s.Output = &out
	return s, &out
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		config series.Config
		err    error
	}{
		{"no games", series.Config{}, series.ErrNoGames},
		{"probability", series.Config{Games: 1, Probability: 1}, series.ErrProbability},
		{"negative probability", series.Config{Games: 1, Probability: -0.1}, series.ErrProbability},
		{"sprt bounds", series.Config{Games: 1, SPRT: &series.SPRTConfig{Elo1: 5}}, series.ErrSPRTBounds},
		{"sprt elo", series.Config{Games: 1, SPRT: &series.SPRTConfig{Alpha: 0.05, Beta: 0.05}}, series.ErrSPRTElo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := series.New(tt.config)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := series.New(series.Config{Games: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Concurrency)
	assert.Equal(t, [2]string{"Player 1", "Player 2"}, s.Players)
}

func TestStart(t *testing.T) {
	s, out := newSeries(t, series.Config{
		Players:     [2]string{"Nadal", "Federer"},
		Games:       40,
		Concurrency: 4,
		Seed:        1,
		ReportEvery: 10,
	})

	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, 40, s.State.Games)
	assert.Equal(t, 40, s.State.Wins[0]+s.State.Wins[1])
	assert.GreaterOrEqual(t, s.State.Points, 4*40)
	assert.Equal(t, series.Undecided, s.Verdict)

	// Four periodic reports and the final one.
	assert.Equal(t, 5, strings.Count(out.String(), "╔"))
	assert.Contains(t, out.String(), "Nadal")
	assert.Contains(t, out.String(), "Federer")
}

func TestStartIsDeterministic(t *testing.T) {
	config := series.Config{Games: 30, Seed: 99, Probability: 0.55}

	sequential, _ := newSeries(t, config)
	require.NoError(t, sequential.Start(context.Background()))

	config.Concurrency = 8
	concurrent, _ := newSeries(t, config)
	require.NoError(t, concurrent.Start(context.Background()))

	assert.Equal(t, sequential.State, concurrent.State)
}

func TestStartSPRT(t *testing.T) {
	s, out := newSeries(t, series.Config{
		Games:       1000,
		Concurrency: 2,
		Probability: 0.9,
		SPRT: &series.SPRTConfig{
			Elo0: 0, Elo1: 50,
			Alpha: 0.05, Beta: 0.05,
		},
	})

	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, series.H1, s.Verdict)
	assert.Less(t, s.State.Games, 1000)
	assert.Contains(t, out.String(), "SPRT   | H1")
}

func TestStartCancelled(t *testing.T) {
	s, _ := newSeries(t, series.Config{Games: 10})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Start(ctx), context.Canceled)
}

func TestReportAlignment(t *testing.T) {
	s, out := newSeries(t, series.Config{
		Name:  "a series name far too long to fit inside the report box",
		Games: 5,
		SPRT:  &series.SPRTConfig{Elo1: 10, Alpha: 0.05, Beta: 0.05},
	})
	s.Report()

	s.State.Games, s.State.Wins = 20, [2]int{20, 0}
	s.Report()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, 51, utf8.RuneCountInString(line), line)
	}
}

func TestReportUnboundedError(t *testing.T) {
	s, out := newSeries(t, series.Config{Name: "clay", Players: [2]string{"Nadal", "Federer"}, Games: 20})
	s.State.Games, s.State.Wins = 20, [2]int{20, 0}
	s.Report()

	report := out.String()
	assert.Contains(t, report, "SERIES | clay")
	for _, line := range strings.Split(report, "\n") {
		if strings.Contains(line, "Nadal") || strings.Contains(line, "Federer") {
			assert.True(t, strings.HasSuffix(line, "  inf ║"), line)
		}
	}

	s.State.Wins = [2]int{10, 10}
	out.Reset()
	s.Report()
	assert.NotContains(t, out.String(), "inf")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: test
players: [Nadal, Federer]
games: 200
concurrency: 4
probability: 0.6
seed: 7
report-every: 50
sprt:
  elo0: 0
  elo1: 25
  alpha: 0.05
  beta: 0.1
`), 0o644))

	config, err := series.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test", config.Name)
	assert.Equal(t, [2]string{"Nadal", "Federer"}, config.Players)
	assert.Equal(t, 200, config.Games)
	assert.Equal(t, 4, config.Concurrency)
	assert.InDelta(t, 0.6, config.Probability, 1e-9)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, 50, config.ReportEvery)
	require.NotNil(t, config.SPRT)
	assert.InDelta(t, 25, config.SPRT.Elo1, 1e-9)
	assert.InDelta(t, 0.1, config.SPRT.Beta, 1e-9)

	_, err = series.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
