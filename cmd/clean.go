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
	"github.com/gnames/gnlichen/internal/ioclean"
	"github.com/gnames/gnlichen/pkg/config"
	"github.com/spf13/cobra"
)

// getCleanCmd returns the clean command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCleanCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		elements   []string
	)

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Filter and bin the element-analysis dataset",
		Long: `Clean turns the raw element-analysis table into a dataset
ready for modeling.

This command:
  1. Reads the raw element-analysis table
  2. Drops rows with missing element concentrations or missing
     numeric columns (blank, 'n.d.', 'n.d' and 'nd' count as missing)
  3. Drops rows with blank category columns
  4. Bins every kept numeric column into labeled classes and appends
     a '<column>_binned' companion column
  5. Writes the result to the output file

Binning schemes come from bins.yaml in the config directory; columns
without a scheme fall back to tertiles (low/medium/high).

Examples:
  # Use files from config.yaml
  gnlichen clean

  # Override the file locations
  gnlichen clean -i air_lichen_query.csv -o element_analysis.csv

  # Keep a different set of elements
  gnlichen clean -e nitrogen,sulfur,lead`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runClean(cmd, inputFile, outputFile, elements)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	cleanCmd.Flags().StringVarP(
		&inputFile, "input", "i", "",
		"raw element-analysis table",
	)
	cleanCmd.Flags().StringVarP(
		&outputFile, "output", "o", "",
		"output file for the cleaned table",
	)
	cleanCmd.Flags().StringSliceVarP(
		&elements, "elements", "e", []string{},
		"element columns to keep and bin (empty = config defaults)",
	)

	return cleanCmd
}

func runClean(
	cmd *cobra.Command,
	inputFile string,
	outputFile string,
	elements []string,
) error {
	ctx := context.Background()

	var cleanOpts []config.Option

	if cmd.Flags().Changed("input") {
		cleanOpts = append(
			cleanOpts,
			config.OptCleanInputFile(inputFile),
		)
	}

	if cmd.Flags().Changed("output") {
		cleanOpts = append(
			cleanOpts,
			config.OptCleanOutputFile(outputFile),
		)
	}

	if cmd.Flags().Changed("elements") {
		cleanOpts = append(
			cleanOpts,
			config.OptCleanElements(elements),
		)
	}

	if len(cleanOpts) > 0 {
		cfg.Update(cleanOpts)
	}

	cl := ioclean.New(cfg)

	gn.Info("Cleaning <em>%s</em>...", cfg.Clean.InputFile)
	if err := cl.Clean(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>gnlichen baseline</em>' to get the accuracy floor
`)

	return nil
}
