package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ufukozkul/solar-case/internal/app"
	"github.com/ufukozkul/solar-case/internal/prefs"
)

var (
	flagMap       string
	flagMapWidth  float32
	flagMapHeight float32
	flagWidth     int32
	flagHeight    int32
)

var rootCmd = &cobra.Command{
	Use:   "solarcase",
	Short: "Parametric building sketcher for rooftop solar layouts",
	Long: `solarcase is an interactive 3D sketching tool for parametric buildings.
Buildings with flat or gable roofs are placed, resized, rotated and height-edited
across a plan, a 3D and an elevation viewport, optionally over a satellite map.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := prefs.Load()
		if flagWidth > 0 {
			p.WindowWidth = flagWidth
		}
		if flagHeight > 0 {
			p.WindowHeight = flagHeight
		}

		cfg := app.Config{
			WindowWidth:  p.WindowWidth,
			WindowHeight: p.WindowHeight,
			MapPath:      flagMap,
			MapWidthM:    flagMapWidth,
			MapHeightM:   flagMapHeight,
		}

		a := app.New(cfg)
		a.ApplyPrefs(p)
		a.Run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagMap, "map", "", "satellite image to show under the plan view")
	rootCmd.Flags().Float32Var(&flagMapWidth, "map-width", 100, "real-world width of the map image in meters")
	rootCmd.Flags().Float32Var(&flagMapHeight, "map-height", 100, "real-world height of the map image in meters")
	rootCmd.Flags().Int32Var(&flagWidth, "width", 0, "window width (default: last session)")
	rootCmd.Flags().Int32Var(&flagHeight, "height", 0, "window height (default: last session)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
