package main

import (
	"strings"

	"github.com/spf13/cobra"

	"smart-checker/api/internal/app"
	"smart-checker/api/internal/form"
)

func newCheckCmd(c *cli) *cobra.Command {
	var (
		server string
		width  int
	)
	cmd := &cobra.Command{
		Use:   "check [objective...]",
		Short: "Score one objective and print the feedback table",
		Example: `  smart-checker check --mock "Improve HR."
  smart-checker check --server http://localhost:8000 "By 30 September 2026, implement a cloud-based HRM system"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var checker form.Checker
			if server != "" {
				checker = form.NewClient(server, nil)
			} else {
				ev, _, err := app.NewEvaluator(c.cfg, c.logger)
				if err != nil {
					return err
				}
				checker = form.CheckerFunc(ev.Evaluate)
			}

			f, err := form.Run(cmd.Context(), strings.Join(args, " "), checker)
			if rerr := form.RenderText(cmd.OutOrStdout(), f, width); rerr != nil {
				return rerr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "base URL of a running smart-checker; evaluates locally when empty")
	cmd.Flags().IntVar(&width, "width", 0, "table width in columns; 0 fits the content")
	return cmd
}
