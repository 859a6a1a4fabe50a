package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-calculator/config"
	"loan-calculator/tui"
	"loan-calculator/widget"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the calculator in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			layout, err := cfg.LoadLayout()
			if err != nil {
				return err
			}

			// the terminal belongs to the UI
			logger := logrus.New()
			logger.SetOutput(io.Discard)

			w, err := widget.New(layout, logger)
			if err != nil {
				return err
			}
			return tui.Run(w)
		},
	}
}
