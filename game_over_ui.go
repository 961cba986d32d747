package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/flappyshooter/assets"
	"github.com/milk9111/flappyshooter/prefabs"
)

// NewGameOverUI builds the centred game-over column: the game-over banner,
// the restart button graphic and a hint line. Clicking the button calls
// onRestart.
func NewGameOverUI(art *assets.Library, spec *prefabs.GameSpec, onRestart func()) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	var hintColor color.Color = color.White
	if spec.Overlay.HintColor != nil && spec.Overlay.HintColor.Color != nil {
		hintColor = spec.Overlay.HintColor.Color
	}
	spacing := spec.Overlay.Spacing
	if spacing <= 0 {
		spacing = 24
	}

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	banner := widget.NewGraphic(
		widget.GraphicOpts.Image(art.GameOver),
		widget.GraphicOpts.WidgetOpts(center),
	)

	restart := widget.NewGraphic(
		widget.GraphicOpts.Image(art.Restart),
		widget.GraphicOpts.WidgetOpts(
			center,
			widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
				onRestart()
			}),
		),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 120})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	column.AddChild(banner)
	column.AddChild(restart)

	if spec.Overlay.Hint != "" {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(spec.Overlay.Hint, &face, hintColor),
			widget.TextOpts.WidgetOpts(center),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(column)

	return &ebitenui.UI{Container: root}
}
