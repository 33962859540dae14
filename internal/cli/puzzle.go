package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Puzzle commands",
	}

	cmd.AddCommand(newPuzzleCreateCmd())
	cmd.AddCommand(newPuzzleGetCmd())
	cmd.AddCommand(newPuzzleListCmd())
	cmd.AddCommand(newPuzzleDeleteCmd())
	cmd.AddCommand(newPuzzleAddCmd())
	cmd.AddCommand(newPuzzleBuildCmd())
	cmd.AddCommand(newPuzzleRenderCmd())

	return cmd
}

func puzzlePath(id string, parts ...string) string {
	return "/api/v1/puzzles/" + url.PathEscape(id) + strings.Join(parts, "")
}

// parseWordFlags splits "word" or "word:clue" values
func parseWordFlags(values []string) []WordEntry {
	entries := make([]WordEntry, 0, len(values))
	for _, v := range values {
		word, clue, _ := strings.Cut(v, ":")
		entries = append(entries, WordEntry{Word: strings.TrimSpace(word), Clue: strings.TrimSpace(clue)})
	}
	return entries
}

func newPuzzleCreateCmd() *cobra.Command {
	var words []string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new puzzle, optionally seeded with words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"title": args[0],
				"words": parseWordFlags(words),
			}

			var result BuildResult
			if err := client.Post(cmd.Context(), "/api/v1/puzzles", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&words, "word", "w", nil, "Seed word as word or word:clue (repeatable)")
	return cmd
}

func newPuzzleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle
			if err := client.Get(cmd.Context(), puzzlePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPuzzleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PuzzleList
			if err := client.Get(cmd.Context(), "/api/v1/puzzles", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPuzzleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), puzzlePath(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted puzzle %s", args[0]))
			return nil
		},
	}
}

func newPuzzleAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <id> <word> [clue]",
		Short: "Place a word at its best position",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"word": args[1]}
			if len(args) == 3 {
				body["clue"] = args[2]
			}

			var result AddWordResult
			if err := client.Post(cmd.Context(), puzzlePath(args[0], "/words"), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPuzzleBuildCmd() *cobra.Command {
	var (
		words        []string
		strategy     string
		fromWordList bool
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "build <id>",
		Short: "Place a list of words, skipping any that do not fit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fromWordList && len(words) == 0 {
				return fmt.Errorf("provide --word or --from-word-list")
			}

			body := map[string]any{
				"strategy":       strategy,
				"from_word_list": fromWordList,
				"limit":          limit,
				"words":          parseWordFlags(words),
			}

			var result BuildResult
			if err := client.Post(cmd.Context(), puzzlePath(args[0], "/build"), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&words, "word", "w", nil, "Word as word or word:clue (repeatable)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "as-given", "Order: as-given, longest-first, shuffled")
	cmd.Flags().BoolVar(&fromWordList, "from-word-list", false, "Use the server's word list")
	cmd.Flags().IntVar(&limit, "limit", 0, "With --from-word-list, use only the first N entries")
	return cmd
}

func newPuzzleRenderCmd() *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Print the puzzle grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, accept := puzzlePath(args[0], "/render"), "text/plain"
			if html {
				path, accept = puzzlePath(args[0], "/render.html"), "text/html"
			}

			body, err := client.GetText(cmd.Context(), path, accept)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), body)
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "Render as an HTML page")
	return cmd
}
