//go:build !ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui [sim]",
		Short: "open the simulation in a window (requires the 'ebiten' build tag)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("the gui command requires building with the 'ebiten' tag: go build -tags ebiten ./cmd/tria")
		},
	}
}
