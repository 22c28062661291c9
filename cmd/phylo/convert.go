package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/newick"
)

var convertOpts struct {
	lengths      bool
	comments     bool
	tags         bool
	noNames      bool
	precision    int
	defaultNames bool
}

// convertCmd reads trees and writes them back out, normalized under the
// chosen printing options.
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Rewrite Newick trees under the given printing options",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, name, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		r := newick.NewReader(in)
		r.Config.UseDefaultNames = convertOpts.defaultNames
		trees, err := r.ReadAll()
		if err != nil {
			return err
		}
		log.Debug().Str("input", name).Int("trees", len(trees)).Msg("parsed")

		w := newick.NewWriter(os.Stdout)
		w.Config.PrintNames = !convertOpts.noNames
		w.Config.PrintBranchLengths = convertOpts.lengths
		w.Config.PrintComments = convertOpts.comments
		w.Config.PrintTags = convertOpts.tags
		w.Config.Precision = convertOpts.precision
		return w.WriteAll(trees)
	},
}

func init() {
	convertCmd.Flags().BoolVarP(&convertOpts.lengths, "lengths", "l", false,
		"write branch lengths")
	convertCmd.Flags().BoolVar(&convertOpts.comments, "comments", false,
		"write comments")
	convertCmd.Flags().BoolVar(&convertOpts.tags, "tags", false,
		"write tags")
	convertCmd.Flags().BoolVar(&convertOpts.noNames, "no-names", false,
		"omit node labels")
	convertCmd.Flags().IntVarP(&convertOpts.precision, "precision", "p", 6,
		"significant digits for branch lengths")
	convertCmd.Flags().BoolVar(&convertOpts.defaultNames, "default-names", false,
		"name unnamed nodes while parsing")
	rootCmd.AddCommand(convertCmd)
}
