//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/technolapin/triangle-automata/internal/app"
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui [sim]",
		Short: "open the simulation in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			world, err := buildSim(cfg)
			if err != nil {
				return err
			}

			game := app.New(world, scale, cfg.Seed)
			size := world.Size()
			ebiten.SetWindowTitle("triangle-automata — " + world.Name())
			ebiten.SetTPS(cfg.TPS)
			ebiten.SetWindowSize(size.W*scale, size.H*scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
