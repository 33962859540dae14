package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/crosswordbuilder/internal/dependencies/random"
	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/render"
	"github.com/mcoot/crosswordbuilder/internal/services/builder"
	"github.com/mcoot/crosswordbuilder/internal/services/placer"
	"github.com/mcoot/crosswordbuilder/internal/services/plan"
)

func newSolveCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "solve <plan.yaml>",
		Short: "Build a plan locally and print the grid",
		Long: `solve reads a YAML plan and places its words on an empty board without
contacting a server:

  title: Names
  strategy: longest-first
  words:
    - word: jacob
      clue: Patriarch
    - word: john`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.Load(args[0])
			if err != nil {
				return err
			}
			if strategy != "" {
				p.Strategy = model.BuildStrategy(strategy)
			}

			handler := slog.Handler(slog.NewTextHandler(io.Discard, nil))
			if cfg.Verbose {
				handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
			}
			logger := slog.New(handler)

			b := builder.New(placer.New(logger), random.New(), logger)
			result, err := b.Build(cmd.Context(), model.EmptyBoard(), p.Words, p.Strategy)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(solveResult(p, result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Override the plan's strategy")
	return cmd
}

func solveResult(p *plan.Plan, result *builder.Result) SolveResult {
	numbers := render.Numbering(result.Board)
	out := SolveResult{
		Title:    p.Title,
		Strategy: string(p.Strategy),
		Grid:     render.Text(result.Board),
		Placed:   make([]Word, len(result.Placed)),
		Skipped:  make([]WordEntry, len(result.Skipped)),
	}
	for i, w := range result.Placed {
		out.Placed[i] = Word{
			Number:      numbers[w.Anchor],
			Orientation: w.Orientation.String(),
			X:           w.Anchor.X,
			Y:           w.Anchor.Y,
			Text:        w.Text,
			Clue:        w.Clue,
			Length:      w.Len(),
		}
	}
	for i, e := range result.Skipped {
		out.Skipped[i] = WordEntry{Word: e.Word, Clue: e.Clue}
	}
	return out
}
