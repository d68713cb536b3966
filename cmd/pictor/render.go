package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pictor/pkg/logging"
	"pictor/pkg/raster"
	"pictor/pkg/script"
)

var (
	renderOut string
	renderPNG bool
)

var renderCmd = &cobra.Command{
	Use:   "render <script.js>",
	Short: "Run a layout script and write the SVG it renders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptPath := args[0]

		eng := script.New()
		if _, err := eng.RunFile(scriptPath); err != nil {
			return err
		}
		markup, ok := eng.LastRender()
		if !ok {
			return fmt.Errorf("%s never called render() on an artboard", scriptPath)
		}

		out := renderOut
		if out == "" {
			out = replaceExt(scriptPath, ".svg")
		}
		if err := os.WriteFile(out, []byte(markup), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logging.L().Info("wrote svg", zap.String("path", out))

		if renderPNG {
			pngPath := replaceExt(out, ".png")
			if err := raster.WritePNG(markup, pngPath); err != nil {
				return err
			}
			logging.L().Info("wrote png", zap.String("path", pngPath))
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output SVG path (default: script name with .svg)")
	renderCmd.Flags().BoolVar(&renderPNG, "png", false, "also rasterize the SVG to a PNG alongside the output")
	rootCmd.AddCommand(renderCmd)
}

func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ext
	}
	return path + ext
}
