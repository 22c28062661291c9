package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
)

// rerootCmd moves the root of each input tree to a named node.
var rerootCmd = &cobra.Command{
	Use:   "reroot <node> [file]",
	Short: "Reroot trees at the node with the given label",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		in, name, err := openInput(args[1:])
		if err != nil {
			return err
		}
		defer in.Close()

		trees, err := newick.NewReader(in).ReadAll()
		if err != nil {
			return err
		}

		w := newick.NewWriter(os.Stdout)
		for i, t := range trees {
			n := tree.FindNode(t, target)
			if n == nil {
				return fmt.Errorf("tree %d of %s has no node %q", i+1, name, target)
			}
			tree.Reroot(t, n.PrimaryLink())
			if err := tree.Validate(t); err != nil {
				return fmt.Errorf("tree %d of %s after rerooting: %w", i+1, name, err)
			}
			log.Debug().Int("tree", i+1).Str("root", target).Msg("rerooted")
			if err := w.WriteTree(t); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rerootCmd)
}
