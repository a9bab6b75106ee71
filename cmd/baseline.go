/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnlichen/internal/iobaseline"
	"github.com/gnames/gnlichen/pkg/config"
	"github.com/spf13/cobra"
)

// getBaselineCmd returns the baseline command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBaselineCmd() *cobra.Command {
	var inputFile string

	baselineCmd := &cobra.Command{
		Use:   "baseline",
		Short: "Report majority-class accuracy of the pollution score",
		Long: `Baseline reports the accuracy of always predicting the most
frequent air pollution score. Any model of the cleaned dataset has
to beat this number to be useful.

Rows with a missing score (blank, 'n.d.', 'n.d', 'nd') are skipped.
Ties keep the score that appeared first in the table.

Examples:
  # Use the cleaned file from config.yaml
  gnlichen baseline

  # Override the input file
  gnlichen baseline -i element_analysis.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBaseline(cmd, inputFile)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	baselineCmd.Flags().StringVarP(
		&inputFile, "input", "i", "",
		"cleaned element-analysis table",
	)

	return baselineCmd
}

func runBaseline(cmd *cobra.Command, inputFile string) error {
	ctx := context.Background()

	if cmd.Flags().Changed("input") {
		cfg.Update([]config.Option{
			config.OptBaselineInputFile(inputFile),
		})
	}

	bl := iobaseline.New(cfg)

	res, err := bl.Report(ctx)
	if err != nil {
		return err
	}

	gn.Info(
		"Majority class <em>%s</em> covers %d of %d rows, accuracy %.3f",
		res.Value, res.Count, res.Total, res.Accuracy(),
	)

	return nil
}
