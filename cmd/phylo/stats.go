package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
)

// statsCmd prints one summary line per input tree.
var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print node, edge and leaf counts per tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		trees, err := newick.NewReader(in).ReadAll()
		if err != nil {
			return err
		}
		for i, t := range trees {
			leaves, depth := 0, 0
			for n, d := range tree.Preorder(t) {
				if n.IsLeaf() {
					leaves++
				}
				if d > depth {
					depth = d
				}
			}
			root := ""
			if rn := t.RootNode(); rn != nil {
				root = rn.Name
			}
			fmt.Printf("tree %d: %d nodes, %d edges, %d leaves, depth %d, root %q\n",
				i+1, t.NodeCount(), t.EdgeCount(), leaves, depth, root)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
