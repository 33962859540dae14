package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errWordListNotLoaded = errors.New("server has no word list loaded")

func newHealthCmd() *cobra.Command {
	var requireWordList bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health and word list readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			if requireWordList && !result.WordListReady {
				return errWordListNotLoaded
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&requireWordList, "require-word-list", false, "Fail unless the server has a word list loaded")
	return cmd
}
