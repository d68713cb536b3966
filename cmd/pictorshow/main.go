// pictorshow is a desktop preview window: enter a layout script path,
// press Enter, and see its artboard rasterized.
package main

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pictor/pkg/raster"
	"pictor/pkg/script"
)

func main() {
	a := app.New()
	w := a.NewWindow("pictor preview")
	w.Resize(fyne.NewSize(1024, 768))

	// Blank initial render target
	target := image.NewRGBA(image.Rect(0, 0, 1024, 700))
	canvasImg := canvas.NewImageFromImage(target)
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a script path and press Enter")

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("examples/badge.js")
	pathEntry.OnSubmitted = func(path string) {
		status.SetText("Rendering " + path + "...")
		go func() {
			eng := script.New()
			if _, err := eng.RunFile(path); err != nil {
				status.SetText("Script error: " + err.Error())
				return
			}
			markup, ok := eng.LastRender()
			if !ok {
				status.SetText("Script never called render()")
				return
			}

			img, err := raster.Render(markup)
			if err != nil {
				status.SetText("Raster error: " + err.Error())
				return
			}

			canvasImg.Image = img
			canvasImg.Refresh()
			status.SetText(path)
			w.SetTitle(fmt.Sprintf("pictor — %s", path))
		}()
	}

	// Layout: path bar on top, status at bottom, image fills center
	topBar := container.NewBorder(nil, nil, nil, nil, pathEntry)
	content := container.NewBorder(topBar, status, nil, nil, canvasImg)
	w.SetContent(content)

	// Keep focus on the entry to prevent Tab freeze with no other focusable widgets
	w.Canvas().Focus(pathEntry)

	w.ShowAndRun()
}
