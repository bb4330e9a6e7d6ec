package chart

import (
	"encoding/json"
)

// ColorStop is one stop of a gradient, Offset in [0, 1].
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  RGBA    `json:"color"`
}

// Gradient is a linear gradient between two points of a drawing surface.
type Gradient struct {
	X0    float64     `json:"x0"`
	Y0    float64     `json:"y0"`
	X1    float64     `json:"x1"`
	Y1    float64     `json:"y1"`
	Stops []ColorStop `json:"stops"`
}

// Surface is the drawing context of a target. Implementations return an
// error when they cannot build the gradient; the renderer then uses the
// solid colour.
type Surface interface {
	LinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) (*Gradient, error)
}

// Fill is either a solid colour or a gradient.
type Fill struct {
	Solid    RGBA
	Gradient *Gradient
}

// IsGradient reports whether the fill carries a gradient.
func (f Fill) IsGradient() bool {
	return f.Gradient != nil
}

// MarshalJSON encodes solid fills as a CSS colour string and gradients as
// an object the page script turns into a CanvasGradient.
func (f Fill) MarshalJSON() ([]byte, error) {
	if f.Gradient == nil {
		return json.Marshal(f.Solid.String())
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		*Gradient
	}{Type: "linearGradient", Gradient: f.Gradient})
}

// barFill builds the vertical gradient for a scheme, or its solid fill
// if the surface refuses.
func barFill(s Surface, scheme ColorScheme, height float64) (Fill, error) {
	g, err := s.LinearGradient(0, 0, 0, height,
		ColorStop{Offset: 0, Color: scheme.Gradient[0]},
		ColorStop{Offset: 1, Color: scheme.Gradient[1]},
	)
	if err != nil || g == nil {
		return Fill{Solid: scheme.Fill}, err
	}
	return Fill{Solid: scheme.Fill, Gradient: g}, nil
}
