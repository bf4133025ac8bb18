package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/expensedesk/tafqeet"
	"github.com/expensedesk/tafqeet/internal/config"
)

type record struct {
	Amount tafqeet.Amount `json:"amount" yaml:"amount"`
	Words  string         `json:"words" yaml:"words"`
}

func newWordsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "words [amount...]",
		Short: "Convert amounts to Arabic words",
		Long: `Convert amounts of Saudi riyals to Arabic words.

Amounts are decimal numbers such as 1234 or 1234.56, rounded to halalas.
Without arguments, amounts are read from standard input, one per line.
Any invalid amount stops the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Format
			}
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q", format)
			}

			inputs := args
			if len(inputs) == 0 {
				var err error
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			records := make([]record, 0, len(inputs))
			for _, s := range inputs {
				amount, err := tafqeet.ParseAmount(s)
				if err != nil {
					return err
				}
				records = append(records, record{Amount: amount, Words: amount.Words()})
				a.log.Debug("converted", zap.Stringer("amount", amount))
			}
			return writeRecords(cmd.OutOrStdout(), format, records)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml (default from config)")
	return cmd
}

func validFormat(format string) bool {
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
		return true
	}
	return false
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading amounts: %w", err)
	}
	return lines, nil
}

func writeRecords(w io.Writer, format string, records []record) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.Words); err != nil {
				return err
			}
		}
		return nil
	}
}
