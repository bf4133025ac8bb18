package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expensedesk/tafqeet/internal/sheet"
)

func newSheetCmd(a *app) *cobra.Command {
	var (
		out        string
		name       string
		amountCol  string
		wordsCol   string
		headerRows int
	)

	cmd := &cobra.Command{
		Use:   "sheet <workbook.xlsx>",
		Short: "Fill the amount-in-words column of a workbook",
		Long: `Fill the amount-in-words column of an Excel workbook.

Each row below the header rows gets the Arabic words of its amount.
Rows with an invalid amount are listed and their words cell is cleared.
The command fails if any row could not be converted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Sheet
			flags := cmd.Flags()
			if flags.Changed("sheet") {
				cfg.Name = name
			}
			if flags.Changed("amount-col") {
				cfg.AmountColumn = amountCol
			}
			if flags.Changed("words-col") {
				cfg.WordsColumn = wordsCol
			}
			if flags.Changed("header-rows") {
				cfg.HeaderRows = headerRows
			}

			report, err := sheet.NewFiller(cfg, a.log).Fill(cmd.Context(), args[0], out)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sheet %s: %d rows, %d converted, %d skipped, %d failed (run %s)\n",
				report.Sheet, report.Rows, report.Converted, report.Skipped, len(report.Failures), report.RunID)
			for _, f := range report.Failures {
				fmt.Fprintln(cmd.ErrOrStderr(), f)
			}
			if n := len(report.Failures); n > 0 {
				return fmt.Errorf("%d rows could not be converted", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output workbook (default: overwrite the input)")
	cmd.Flags().StringVar(&name, "sheet", "", "worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&amountCol, "amount-col", "", "column holding the amounts")
	cmd.Flags().StringVar(&wordsCol, "words-col", "", "column receiving the words")
	cmd.Flags().IntVar(&headerRows, "header-rows", 0, "number of header rows to skip")
	return cmd
}
