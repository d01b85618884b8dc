package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/flow-banner/flow"
)

func newLayoutCmd(flags *rootFlags) *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print stage and link geometry for a surface size in logical pixels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			fc := cfg.FlowConfig()
			layout := flow.ComputeLayout(fc.Stages, width, height, fc.Anchor)
			links := flow.BuildLinks(layout.Stages)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "surface %gx%g\n", layout.Width, layout.Height)
			fmt.Fprintf(out, "%-12s %8s %8s %8s %8s  %s\n", "STAGE", "X", "Y", "WIDTH", "HEIGHT", "COLOR")
			for _, s := range layout.Stages {
				fmt.Fprintf(out, "%-12s %8.1f %8.1f %8.1f %8.1f  %s\n",
					s.ID, s.Center.X, s.Center.Y, s.Width, s.Height, s.Color)
			}
			for _, l := range links {
				from, to := layout.Stages[l.Index], layout.Stages[l.Index+1]
				fmt.Fprintf(out, "link %d %s -> %s length %.1f\n", l.Index, from.ID, to.ID, l.Length)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 1200, "surface width in logical pixels")
	cmd.Flags().Float64Var(&height, "height", 600, "surface height in logical pixels")
	return cmd
}
