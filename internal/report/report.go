// Package report compares how many positions each search visits over a game.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

// Sample is one ply of the reference game.
type Sample struct {
	Ply       int
	Mark      entity.Mark
	Move      entity.Move
	Minimax   int
	AlphaBeta int
}

// Collect plays alpha-beta against itself from the empty board. Before every
// ply both searches look at the same position and their node counts are kept.
func Collect() ([]Sample, *entity.Game, error) {
	game := entity.NewGame("report")
	minimax := tictactoe.NewMinimax()
	alphaBeta := tictactoe.NewAlphaBeta()

	samples := make([]Sample, 0, entity.Size*entity.Size)
	for ply := 1; !game.IsFinished(); ply++ {
		mark := game.Turn

		// minimax walks the whole tree for either mark; only its node count is kept
		minimax.ChooseMove(&game.Board, mark)
		move := alphaBeta.ChooseMove(&game.Board, mark)

		samples = append(samples, Sample{
			Ply:       ply,
			Mark:      mark,
			Move:      move,
			Minimax:   minimax.Nodes(),
			AlphaBeta: alphaBeta.Nodes(),
		})

		if err := game.MakeTurn(mark, move); err != nil {
			return nil, nil, fmt.Errorf("failed make turn on ply %d: %w", ply, err)
		}
	}

	return samples, game, nil
}

// Render writes a bar chart page with one bar pair per ply.
func Render(w io.Writer, samples []Sample) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Positions evaluated per ply",
			Subtitle: "alpha-beta against itself from the empty board",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	plies := make([]string, 0, len(samples))
	minimaxItems := make([]opts.BarData, 0, len(samples))
	alphaBetaItems := make([]opts.BarData, 0, len(samples))

	for _, sample := range samples {
		plies = append(plies, fmt.Sprintf("%d %s (%d,%d)", sample.Ply, sample.Mark, sample.Move.Row+1, sample.Move.Col+1))
		minimaxItems = append(minimaxItems, opts.BarData{Value: sample.Minimax})
		alphaBetaItems = append(alphaBetaItems, opts.BarData{Value: sample.AlphaBeta})
	}

	bar.SetXAxis(plies).
		AddSeries("minimax", minimaxItems).
		AddSeries("alpha-beta", alphaBetaItems)

	page := components.NewPage()
	page.AddCharts(bar)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

// WriteFile renders samples into path, creating its directory.
func WriteFile(path string, samples []Sample) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	return Render(f, samples)
}
