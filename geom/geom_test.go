package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jitprasann/orthoedge/geom"
)

func TestInflate_ZeroAndNegativePadding(t *testing.T) {
	r := geom.Rect{ID: "A", X: 10, Y: 10, Width: 20, Height: 20}

	zero := geom.Inflate(r, 0)
	assert.Equal(t, geom.Inflated{ID: "A", Left: 10, Right: 30, Top: 10, Bottom: 30}, zero)

	// Negative padding is an invalid configuration value, treated as zero.
	neg := geom.Inflate(r, -5)
	assert.Equal(t, zero, neg)
}

func TestInflated_ContainsStrict_BoundaryIsLegal(t *testing.T) {
	ir := geom.Inflate(geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}, 0)

	assert.True(t, ir.ContainsStrict(geom.Point{X: 5, Y: 5}))
	// On-boundary points are NOT strictly inside; a path may graze them.
	assert.False(t, ir.ContainsStrict(geom.Point{X: 0, Y: 5}))
	assert.False(t, ir.ContainsStrict(geom.Point{X: 10, Y: 5}))
	assert.False(t, ir.ContainsStrict(geom.Point{X: 20, Y: 20}))
}

func TestNewSegment_ClassifiesOrientation(t *testing.T) {
	h, ok := geom.NewSegment(geom.Point{X: 0, Y: 5}, geom.Point{X: 10, Y: 5})
	assert.True(t, ok)
	assert.Equal(t, geom.Horizontal, h.Orientation)
	assert.Equal(t, 10.0, h.Length())

	v, ok := geom.NewSegment(geom.Point{X: 3, Y: 0}, geom.Point{X: 3, Y: 7})
	assert.True(t, ok)
	assert.Equal(t, geom.Vertical, v.Orientation)
	assert.Equal(t, 7.0, v.Length())

	_, ok = geom.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1})
	assert.False(t, ok, "a diagonal pair is not a legal orthogonal segment")
}

func TestSegment_CrossesRect(t *testing.T) {
	obstacle := geom.Inflate(geom.Rect{X: 25, Y: 80, Width: 50, Height: 50}, 20)
	// obstacle inflated bounds: (5,60)-(95,150).

	vertical, _ := geom.NewSegment(geom.Point{X: 50, Y: 0}, geom.Point{X: 50, Y: 200})
	assert.True(t, vertical.CrossesRect(obstacle))

	// A vertical segment running exactly along the inflated boundary does
	// not cross (strict inequality).
	onBoundary, _ := geom.NewSegment(geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 200})
	assert.False(t, onBoundary.CrossesRect(obstacle))

	horizontal, _ := geom.NewSegment(geom.Point{X: 0, Y: 100}, geom.Point{X: 4, Y: 100})
	assert.False(t, horizontal.CrossesRect(obstacle), "segment entirely left of the obstacle")
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   []geom.Point
		want []geom.Point
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "drops exact duplicates",
			in: []geom.Point{
				{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0},
			},
			want: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		},
		{
			name: "drops collinear interior points",
			in: []geom.Point{
				{X: 50, Y: 40}, {X: 50, Y: 60}, {X: 50, Y: 180}, {X: 50, Y: 200},
			},
			want: []geom.Point{{X: 50, Y: 40}, {X: 50, Y: 200}},
		},
		{
			name: "keeps genuine bends",
			in: []geom.Point{
				{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 20},
			},
			want: []geom.Point{
				{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 20},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.Simplify(tc.in)
			assert.Equal(t, tc.want, got)
			// Round-trip law: simplify is idempotent.
			assert.Equal(t, got, geom.Simplify(got))
		})
	}
}
