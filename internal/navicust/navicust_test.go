package navicust

import (
	"testing"

	"github.com/retroenv/bndata/internal/rom/mocks"
	"github.com/retroenv/bndata/internal/save"
	"github.com/retroenv/retrogolib/assert"
)

type placementView struct {
	parts []*save.NavicustPart
}

func (v *placementView) Width() int {
	return 5
}

func (v *placementView) Height() int {
	return 5
}

func (v *placementView) Count() int {
	return len(v.parts)
}

func (v *placementView) NavicustPart(i int) (save.NavicustPart, bool) {
	if i < 0 || i >= len(v.parts) || v.parts[i] == nil {
		return save.NavicustPart{}, false
	}
	return *v.parts[i], true
}

func (v *placementView) Precomposed() (save.Grid, bool) {
	return save.Grid{}, false
}

func testAssets() *mocks.Assets {
	return &mocks.Assets{
		Parts: map[mocks.PartKey]*mocks.NavicustPart{
			{ID: 1, Variant: 0}: {
				Uncompressed: mocks.ParseBitmap(
					"...",
					"###",
					"#..",
				),
				Compressed: mocks.ParseBitmap(
					"...",
					".#.",
					"...",
				),
			},
			{ID: 2, Variant: 1}: {
				Uncompressed: mocks.ParseBitmap(
					"#",
				),
			},
		},
	}
}

func rows(g save.Grid) [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		out[y] = g.Cells[y*g.Width : (y+1)*g.Width]
	}
	return out
}

func TestCompose(t *testing.T) {
	view := &placementView{parts: []*save.NavicustPart{
		{ID: 1, Variant: 0, Col: 1, Row: 1},
		nil,
		{ID: 2, Variant: 1, Col: 3, Row: 3},
	}}

	g := Compose(view, testAssets())
	assert.Equal(t, [][]int{
		{-1, -1, -1, -1, -1},
		{0, 0, 0, -1, -1},
		{0, -1, -1, -1, -1},
		{-1, -1, -1, 2, -1},
		{-1, -1, -1, -1, -1},
	}, rows(g))
}

func TestComposeRotation(t *testing.T) {
	view := &placementView{parts: []*save.NavicustPart{
		{ID: 1, Variant: 0, Col: 2, Row: 2, Rot: 1},
	}}

	g := Compose(view, testAssets())
	assert.Equal(t, [][]int{
		{-1, -1, -1, -1, -1},
		{-1, 0, 0, -1, -1},
		{-1, -1, 0, -1, -1},
		{-1, -1, 0, -1, -1},
		{-1, -1, -1, -1, -1},
	}, rows(g))

	// four quarter turns are the identity
	view.parts[0].Rot = 4
	g = Compose(view, testAssets())
	assert.Equal(t, 0, g.At(2, 1))
	assert.Equal(t, 0, g.At(3, 1))
}

func TestComposeCompressedAndOverlap(t *testing.T) {
	view := &placementView{parts: []*save.NavicustPart{
		{ID: 1, Variant: 0, Col: 2, Row: 2},
		{ID: 1, Variant: 0, Col: 2, Row: 2, Compressed: true},
	}}

	g := Compose(view, testAssets())
	assert.Equal(t, 0, g.At(2, 1))
	assert.Equal(t, 1, g.At(2, 2))
	assert.Equal(t, 0, g.At(2, 3))
}

func TestComposeClipsAndSkipsUnknown(t *testing.T) {
	view := &placementView{parts: []*save.NavicustPart{
		{ID: 1, Variant: 0, Col: 0, Row: 4},
		{ID: 9, Variant: 0, Col: 2, Row: 2},
	}}

	g := Compose(view, testAssets())
	assert.Equal(t, [][]int{
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, -1},
		{0, 0, -1, -1, -1},
	}, rows(g))
}
