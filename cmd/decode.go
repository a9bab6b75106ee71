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
	"github.com/gnames/gnlichen/internal/iodecode"
	"github.com/gnames/gnlichen/pkg/config"
	"github.com/spf13/cobra"
)

// getDecodeCmd returns the decode command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getDecodeCmd() *cobra.Command {
	var (
		referenceFile string
		targetFile    string
		outputFile    string
		withVerify    bool
		sqliteFile    string
	)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Fill missing scientific names from species codenames",
		Long: `Decode derives a codename for every scientific name of the
reference table and fills the blank name cells of the target table.

This command:
  1. Reads the taxonomic reference table (one name per row)
  2. Derives short codenames (3 letters of genus, species and
     subspecies epithets, extended on collision)
  3. Reads the target observation table
  4. Fills ONLY blank cells of the name column; existing values
     are never overwritten
  5. Writes the augmented table to the output file

Codenames of names that share a prefix grow one letter at a time
until they differ. True duplicates get numeric suffixes (2, 3, ...).

Examples:
  # Use files from config.yaml
  gnlichen decode

  # Override the file locations
  gnlichen decode -r plantlist.csv -t query.csv -o out.csv

  # Cross-check reconstructed names with a name parser
  gnlichen decode --verify

  # Also export mapping and records to SQLite
  gnlichen decode --sqlite lichen.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDecode(
				cmd, referenceFile, targetFile, outputFile,
				withVerify, sqliteFile,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	decodeCmd.Flags().StringVarP(
		&referenceFile, "reference", "r", "",
		"taxonomic reference table with scientific names",
	)
	decodeCmd.Flags().StringVarP(
		&targetFile, "target", "t", "",
		"observation table with codenames",
	)
	decodeCmd.Flags().StringVarP(
		&outputFile, "output", "o", "",
		"output file for the augmented table",
	)
	decodeCmd.Flags().BoolVar(
		&withVerify, "verify", false,
		"cross-check reconstructed names with gnparser",
	)
	decodeCmd.Flags().StringVar(
		&sqliteFile, "sqlite", "",
		"export mapping and records to a SQLite file",
	)

	return decodeCmd
}

func runDecode(
	cmd *cobra.Command,
	referenceFile string,
	targetFile string,
	outputFile string,
	withVerify bool,
	sqliteFile string,
) error {
	ctx := context.Background()

	// Build options from explicitly set flags
	var decodeOpts []config.Option

	if cmd.Flags().Changed("reference") {
		decodeOpts = append(
			decodeOpts,
			config.OptDecodeReferenceFile(referenceFile),
		)
	}

	if cmd.Flags().Changed("target") {
		decodeOpts = append(
			decodeOpts,
			config.OptDecodeTargetFile(targetFile),
		)
	}

	if cmd.Flags().Changed("output") {
		decodeOpts = append(
			decodeOpts,
			config.OptDecodeOutputFile(outputFile),
		)
	}

	if cmd.Flags().Changed("verify") {
		decodeOpts = append(
			decodeOpts,
			config.OptDecodeWithVerify(withVerify),
		)
	}

	if cmd.Flags().Changed("sqlite") {
		decodeOpts = append(
			decodeOpts,
			config.OptDecodeSQLiteFile(sqliteFile),
		)
	}

	if len(decodeOpts) > 0 {
		cfg.Update(decodeOpts)
	}

	dec := iodecode.New(cfg)

	gn.Info("Decoding codenames of <em>%s</em>...", cfg.Decode.TargetFile)
	if err := dec.Decode(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>gnlichen clean</em>' to filter and bin the dataset
	 - Run '<em>gnlichen baseline</em>' to get the accuracy floor
`)

	return nil
}
