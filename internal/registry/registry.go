// Package registry owns all loaded and generated data sets. It is the
// single source of truth: every view (terminal chart, series table, image
// export) is a disposable projection rebuilt from it.
package registry

import (
	"fmt"
	"math"
)

// LineStyle is the stroke a series is drawn with.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
)

func (l LineStyle) String() string {
	switch l {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	default:
		return "unknown"
	}
}

// MarkerStyle is the per-point glyph a series is drawn with.
type MarkerStyle int

const (
	MarkerNone MarkerStyle = iota
	MarkerCircle
	MarkerSquare
)

func (m MarkerStyle) String() string {
	switch m {
	case MarkerNone:
		return "none"
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Series is one loaded or generated data set. X and Y are the same length
// and insertion order is display order along the line. Colors are not
// stored here: consumers derive them from the current id, so a delete that
// renumbers later sets also recolors them.
type Series struct {
	X, Y    []float64
	Label   string
	Visible bool
	Line    LineStyle
	Marker  MarkerStyle
}

// Info is a projection of one series for list displays.
type Info struct {
	ID      int
	Label   string
	Visible bool
	Points  int
}

// Extent is the axis-aligned bounding rectangle of a set of points.
type Extent struct {
	XMin, XMax, YMin, YMax float64
}

// Pad grows the extent by frac of its span per axis. A zero-span axis gets
// a unit pad instead so the result is never degenerate.
func (e Extent) Pad(frac float64) Extent {
	dx := (e.XMax - e.XMin) * frac
	if dx == 0 {
		dx = 1
	}
	dy := (e.YMax - e.YMin) * frac
	if dy == 0 {
		dy = 1
	}
	return Extent{
		XMin: e.XMin - dx,
		XMax: e.XMax + dx,
		YMin: e.YMin - dy,
		YMax: e.YMax + dy,
	}
}

// Registry holds all series under dense 0-based ids. Ids are not stable
// across deletions: Remove renumbers the survivors, so any id held outside
// the registry must be revalidated after every removal.
type Registry struct {
	sets []*Series
}

func New() *Registry {
	return &Registry{}
}

// Add stores a new series under the next sequential id and returns that
// id. X and y must be equal length (the caller enforces this); empty
// series are permitted and simply render nothing. The label defaults to
// "Set {id}".
func (r *Registry) Add(x, y []float64, label string) int {
	id := len(r.sets)
	if label == "" {
		label = fmt.Sprintf("Set %d", id)
	}
	r.sets = append(r.sets, &Series{
		X:       x,
		Y:       y,
		Label:   label,
		Visible: true,
		Line:    LineSolid,
		Marker:  MarkerNone,
	})
	return id
}

// Len returns the number of series.
func (r *Registry) Len() int {
	return len(r.sets)
}

// Series returns the series with the given id, or false if the id is out
// of range.
func (r *Registry) Series(id int) (*Series, bool) {
	if id < 0 || id >= len(r.sets) {
		return nil, false
	}
	return r.sets[id], true
}

// SetVisible sets the visibility flag. Out-of-range ids are ignored.
func (r *Registry) SetVisible(id int, visible bool) {
	if id < 0 || id >= len(r.sets) {
		return
	}
	r.sets[id].Visible = visible
}

// Toggle flips the visibility flag. Out-of-range ids are ignored.
func (r *Registry) Toggle(id int) {
	if id < 0 || id >= len(r.sets) {
		return
	}
	r.sets[id].Visible = !r.sets[id].Visible
}

// Remove deletes the series with the given id and renumbers the survivors
// to keep ids dense, preserving their relative order. Out-of-range ids are
// ignored.
func (r *Registry) Remove(id int) {
	if id < 0 || id >= len(r.sets) {
		return
	}
	r.sets = append(r.sets[:id], r.sets[id+1:]...)
}

// List returns one Info per series, ascending by id.
func (r *Registry) List() []Info {
	infos := make([]Info, len(r.sets))
	for i, s := range r.sets {
		infos[i] = Info{
			ID:      i,
			Label:   s.Label,
			Visible: s.Visible,
			Points:  len(s.X),
		}
	}
	return infos
}

// BoundingExtent returns the minimal extent containing every finite point
// of every visible series (or of all series when includeHidden is set).
// NaN and infinite points are ignored so they can never invert the bounds.
// The second return is false when no qualifying series has at least one
// finite point; callers treat that as "no autoscale applied", not an
// error.
func (r *Registry) BoundingExtent(includeHidden bool) (Extent, bool) {
	ext := Extent{
		XMin: math.MaxFloat64,
		XMax: -math.MaxFloat64,
		YMin: math.MaxFloat64,
		YMax: -math.MaxFloat64,
	}
	found := false
	for _, s := range r.sets {
		if !s.Visible && !includeHidden {
			continue
		}
		for i := range s.X {
			if !finite(s.X[i]) || !finite(s.Y[i]) {
				continue
			}
			if s.X[i] < ext.XMin {
				ext.XMin = s.X[i]
			}
			if s.X[i] > ext.XMax {
				ext.XMax = s.X[i]
			}
			if s.Y[i] < ext.YMin {
				ext.YMin = s.Y[i]
			}
			if s.Y[i] > ext.YMax {
				ext.YMax = s.Y[i]
			}
			found = true
		}
	}
	if !found {
		return Extent{}, false
	}
	return ext, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
