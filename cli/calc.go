package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-calculator/domain"
	"loan-calculator/service"
	"loan-calculator/widget"
)

func calcCmd() *cobra.Command {
	var (
		total  float64
		loan   float64
		down   float64
		rate   float64
		tenure int
		asJSON bool
	)

	c := &cobra.Command{
		Use:   "calc",
		Short: "Compute the installment for one set of slider values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logrus.New()
			logger.SetOutput(io.Discard)

			w, err := widget.New(widget.DefaultLayout(), logger)
			if err != nil {
				return err
			}

			// same order a user would move the controls in
			var edits []domain.Edit
			flags := cmd.Flags()
			if flags.Changed("total") {
				edits = append(edits, domain.Edit{Field: domain.FieldTotal, Value: total})
			}
			if flags.Changed("loan") {
				edits = append(edits, domain.Edit{Field: domain.FieldLoan, Value: loan})
			}
			if flags.Changed("down") {
				edits = append(edits, domain.Edit{Field: domain.FieldDown, Value: down})
			}
			if flags.Changed("rate") {
				edits = append(edits, domain.Edit{Field: domain.FieldRate, Value: rate})
			}
			if flags.Changed("tenure") {
				edits = append(edits, domain.Edit{Field: domain.FieldTenure, Value: float64(tenure)})
			}

			view := w.Render()
			for _, e := range edits {
				view, err = w.Apply(e)
				if err != nil {
					return fmt.Errorf("%s: %w", e.Field, err)
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view.State)
			}

			for _, ctl := range view.Controls {
				fmt.Fprintln(out, ctl.Label)
			}
			for _, r := range view.Readouts {
				fmt.Fprintf(out, "%s: %s\n", r.Label, r.Text)
			}
			return nil
		},
	}

	c.Flags().Float64Var(&total, "total", service.DefaultTotalAmount, "total amount (1000-10000, step 1000); splits loan and down payment in half")
	c.Flags().Float64Var(&loan, "loan", 0, "loan amount (0-total, step 100)")
	c.Flags().Float64Var(&down, "down", 0, "down payment (0-total, step 1000)")
	c.Flags().Float64Var(&rate, "rate", service.DefaultInterestRate, "annual interest rate as a fraction (0.01-0.05)")
	c.Flags().IntVar(&tenure, "tenure", service.DefaultTenureMonths, "tenure in months (6, 12, 18, 24, 30 or 36)")
	c.Flags().BoolVar(&asJSON, "json", false, "print the resulting state as JSON")
	return c
}
