package main

import (
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and
PAGESIM_* environment variables have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if s.jsonOut {
				return report.WriteJSON(s.out, s.cfg)
			}
			data, err := s.cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			_, err = s.out.Write(data)
			return err
		},
	}
}
