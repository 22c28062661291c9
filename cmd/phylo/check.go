package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
)

// checkCmd parses the input and verifies the structure of every tree.
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse trees and verify their structure",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, name, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		trees, err := newick.NewReader(in).ReadAll()
		if err != nil {
			return err
		}
		for i, t := range trees {
			if err := tree.Validate(t); err != nil {
				return fmt.Errorf("tree %d of %s: %w", i+1, name, err)
			}
		}
		log.Info().Str("input", name).Int("trees", len(trees)).Msg("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
