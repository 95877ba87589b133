package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
)

// renderPicture paints the solved picture of a theme, boardPx pixels square.
func renderPicture(p puzzle.Palette, boardPx, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, boardPx, boardPx))
	for y := 0; y < boardPx; y++ {
		for x := 0; x < boardPx; x++ {
			c := p.Sample(x, y, boardPx, size)
			img.SetRGBA(x, y, color.RGBA{c.R, c.G, c.B, 255})
		}
	}
	return img
}

type pictureKey struct {
	theme   puzzle.Theme
	boardPx int
	size    int
}

// pictureCache keeps the GPU image of the current picture. Rebuilding is
// only needed when the theme, board or grid size changes.
type pictureCache struct {
	key pictureKey
	img *ebiten.Image
}

func (c *pictureCache) get(theme puzzle.Theme, l Layout) *ebiten.Image {
	px := l.TilePx * l.Size
	key := pictureKey{theme: theme, boardPx: px, size: l.Size}
	if c.img != nil && c.key == key {
		return c.img
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.key = key
	c.img = ebiten.NewImageFromImage(renderPicture(puzzle.PaletteFor(theme), px, l.Size))
	return c.img
}

// tileSource returns the part of the picture a tile carries: its home cell.
func tileSource(pic *ebiten.Image, id int, l Layout) *ebiten.Image {
	home := puzzle.HomeOf(id, l.Size)
	r := image.Rect(home.X*l.TilePx, home.Y*l.TilePx, (home.X+1)*l.TilePx, (home.Y+1)*l.TilePx)
	return pic.SubImage(r).(*ebiten.Image)
}
