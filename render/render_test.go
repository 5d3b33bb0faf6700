package render

import (
	"bytes"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/geomath/plane"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	t.Run("empty scene", func(t *testing.T) {
		var scene Scene
		min, max := scene.Bounds()
		assert.Equal(t, plane.Point{X: -1, Y: -1}, min)
		assert.Equal(t, plane.Point{X: 1, Y: 1}, max)
	})

	t.Run("lines don't count", func(t *testing.T) {
		var scene Scene
		scene.AddLine(plane.LineEquation{M: 1, C: 1000})
		scene.AddPoints(plane.Point{X: 0, Y: 0}, plane.Point{X: 4, Y: 3})
		min, max := scene.Bounds()
		assert.Equal(t, plane.Point{X: 0, Y: 0}, min)
		assert.Equal(t, plane.Point{X: 4, Y: 3}, max)
	})

	t.Run("feet and shapes count", func(t *testing.T) {
		var scene Scene
		scene.AddFoot(plane.Point{X: -2, Y: 1}, plane.Point{X: 0, Y: 1})
		scene.AddShape([]plane.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 7}})
		min, max := scene.Bounds()
		assert.Equal(t, plane.Point{X: -2, Y: 0}, min)
		assert.Equal(t, plane.Point{X: 5, Y: 7}, max)
	})

	t.Run("non-finite points are skipped", func(t *testing.T) {
		var scene Scene
		scene.AddPoints(plane.Point{X: math.NaN(), Y: 0}, plane.Point{X: 1, Y: 1}, plane.Point{X: 4, Y: 3})
		scene.AddFoot(plane.Point{X: math.Inf(1), Y: 0}, plane.Point{X: 2, Y: 2})
		scene.AddShape([]plane.Point{{X: 0, Y: math.Inf(-1)}})
		min, max := scene.Bounds()
		assert.Equal(t, plane.Point{X: 1, Y: 1}, min)
		assert.Equal(t, plane.Point{X: 4, Y: 3}, max)
	})

	t.Run("overflowing extent falls back to the default box", func(t *testing.T) {
		var scene Scene
		scene.AddPoints(plane.Point{X: -math.MaxFloat64, Y: 0}, plane.Point{X: math.MaxFloat64, Y: 0})
		min, max := scene.Bounds()
		assert.Equal(t, plane.Point{X: -1, Y: -1}, min)
		assert.Equal(t, plane.Point{X: 1, Y: 1}, max)
	})

	t.Run("degenerate extent is widened", func(t *testing.T) {
		var scene Scene
		scene.AddPoints(plane.Point{X: 3, Y: 3}, plane.Point{X: 3, Y: 10})
		min, max := scene.Bounds()
		assert.Equal(t, 1.0, max.X-min.X)
		assert.Equal(t, 7.0, max.Y-min.Y)
	})
}

func TestDraw(t *testing.T) {
	t.Run("size", func(t *testing.T) {
		var scene Scene
		scene.AddPoints(plane.Point{X: 0, Y: 0}, plane.Point{X: 10, Y: 5})
		img := scene.Draw(20)
		assert.Equal(t, 10*20+2*Padding, img.Bounds().Dx())
		assert.Equal(t, 5*20+2*Padding, img.Bounds().Dy())
	})

	t.Run("points land where expected", func(t *testing.T) {
		var scene Scene
		p1 := plane.Point{X: 0, Y: 0}
		p2 := plane.Point{X: 10, Y: 10}
		p3 := plane.Point{X: 0, Y: 10}
		foot := plane.PerpendicularFoot(p1, p2, p3)
		scene.AddShape(plane.RotateTriangle([]plane.Point{p1, p2, p3}, foot, 45))
		scene.AddLine(plane.LineEquationFrom(p1, p2))
		scene.AddFoot(p3, foot)
		scene.AddPoints(p1, p2, p3, foot)

		const scale = 10
		img := scene.Draw(scale)
		for _, p := range scene.Points {
			px := scene.PixelAt(p, scale)
			r, g, b, _ := img.At(px.X, px.Y).RGBA()
			assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b}, "point %v at %v", p, px)
		}
	})

	t.Run("origin is bottom left", func(t *testing.T) {
		var scene Scene
		scene.AddPoints(plane.Point{X: 0, Y: 0}, plane.Point{X: 10, Y: 10})
		img := scene.Draw(1)
		px := scene.PixelAt(plane.Point{X: 0, Y: 0}, 1)
		assert.Equal(t, Padding, px.X)
		assert.Equal(t, img.Bounds().Dy()-Padding, px.Y)

		// Nothing but background in the corner
		r, g, b, _ := img.At(0, 0).RGBA()
		assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
	})
}

func TestDraw_Degenerate(t *testing.T) {
	t.Run("NaN and Inf", func(t *testing.T) {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			var scene Scene
			scene.AddPoints(plane.Point{X: bad, Y: 0}, plane.Point{X: 1, Y: 1})
			scene.AddLine(plane.LineEquation{M: bad, C: 0})
			scene.AddLine(plane.LineEquation{Vertical: true, VerticalX: bad})
			scene.AddFoot(plane.Point{X: 0, Y: 0}, plane.Point{X: 0, Y: bad})
			scene.AddShape([]plane.Point{{X: 0, Y: 0}, {X: bad, Y: 1}, {X: 1, Y: 0}})

			assert.NotPanics(t, func() {
				img := scene.Draw(10)
				// Only finite coordinates count, and those span the unit square
				assert.Equal(t, 10+2*Padding, img.Bounds().Dx())
			}, "with %g", bad)
		}
	})

	t.Run("huge extent is scaled to fit", func(t *testing.T) {
		var scene Scene
		far := plane.Point{X: 1e9, Y: 1e9}
		scene.AddPoints(plane.Point{X: 0, Y: 0}, far)
		scene.AddLine(plane.LineEquation{M: 1, C: 0})

		var img image.Image
		require.NotPanics(t, func() { img = scene.Draw(10) })
		assert.LessOrEqual(t, img.Bounds().Dx(), MaxSide)
		assert.LessOrEqual(t, img.Bounds().Dy(), MaxSide)

		px := scene.PixelAt(far, 10)
		assert.True(t, px.In(img.Bounds()), "%v outside %v", px, img.Bounds())
	})

	t.Run("non-positive scale is scaled to fit", func(t *testing.T) {
		var scene Scene
		scene.AddPoints(plane.Point{X: 0, Y: 0}, plane.Point{X: 100, Y: 50})
		for _, scale := range []float64{0, -5, math.NaN()} {
			var dx int
			require.NotPanics(t, func() { dx = scene.Draw(scale).Bounds().Dx() })
			assert.LessOrEqual(t, dx, MaxSide, "scale %g", scale)
			assert.InDelta(t, MaxSide, dx, 1, "scale %g", scale)
		}
	})

	t.Run("steep and distant lines", func(t *testing.T) {
		var scene Scene
		scene.AddPoints(plane.Point{X: 0, Y: 0}, plane.Point{X: 1, Y: 1})
		scene.AddLine(plane.LineEquation{M: 1e300, C: 0})
		scene.AddLine(plane.LineEquation{M: 0, C: 1e300})
		scene.AddLine(plane.LineEquation{Vertical: true, VerticalX: -1e300})
		assert.NotPanics(t, func() { scene.Draw(10) })

		// Padding past a box this wide overflows float64
		var edge Scene
		edge.AddPoints(plane.Point{X: -math.MaxFloat64, Y: 0}, plane.Point{X: 0, Y: 1})
		edge.AddLine(plane.LineEquation{M: 1, C: 0})
		assert.NotPanics(t, func() { edge.Draw(10) })
	})
}

func TestClipLine(t *testing.T) {
	lo := plane.Point{X: 0, Y: 0}
	hi := plane.Point{X: 10, Y: 10}

	a, b, ok := clipLine(plane.LineEquation{M: 2, C: 0}, lo, hi)
	require.True(t, ok)
	assert.True(t, a.Equal(plane.Point{X: 0, Y: 0}))
	assert.True(t, b.Equal(plane.Point{X: 5, Y: 10}))

	a, b, ok = clipLine(plane.LineEquation{Vertical: true, VerticalX: 3}, lo, hi)
	require.True(t, ok)
	assert.Equal(t, plane.Point{X: 3, Y: 0}, a)
	assert.Equal(t, plane.Point{X: 3, Y: 10}, b)

	_, _, ok = clipLine(plane.LineEquation{M: 1, C: 20}, lo, hi)
	assert.False(t, ok)
	_, _, ok = clipLine(plane.LineEquation{C: -1}, lo, hi)
	assert.False(t, ok)
	_, _, ok = clipLine(plane.LineEquation{Vertical: true, VerticalX: 11}, lo, hi)
	assert.False(t, ok)
}

func TestSavePNG(t *testing.T) {
	var scene Scene
	scene.AddPoints(plane.Point{X: 1, Y: 1})
	scene.AddLine(plane.LineEquation{Vertical: true, VerticalX: 1})

	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, scene.SavePNG(path, 5))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	err = scene.SavePNG(filepath.Join(t.TempDir(), "missing", "scene.png"), 5)
	assert.Error(t, err)

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err = scene.SavePNG(filepath.Join(t.TempDir(), "scene.png"), scale)
		assert.True(t, errors.Is(err, ErrInvalidScale), "scale %g", scale)
	}
}

func TestShow(t *testing.T) {
	var scene Scene
	scene.AddPoints(plane.Point{X: 0, Y: 0}, plane.Point{X: 2, Y: 1})
	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, scene.SavePNG(path, 5))

	var out bytes.Buffer
	require.NoError(t, Show(path, &out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("\x1b]1337;File=")), "got %q", out.String())

	assert.Error(t, Show(filepath.Join(t.TempDir(), "nope.png"), &out))
}
