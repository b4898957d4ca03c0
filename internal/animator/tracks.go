package animator

import (
	"time"

	"toastfx/internal/anim"
	"toastfx/internal/easing"
	"toastfx/internal/element"
)

// track is one member of a show or hide group.
type track struct {
	prop  element.Property
	from  float64
	to    float64
	curve easing.Curve
	// geometry tracks take the configured curve override, if any.
	geometry bool
	// fromActualHeight starts the track at the element's rendered height at call time.
	fromActualHeight bool
}

// Show grows the relative scaleY while hide shrinks the absolute height, so hide
// reflows the layout and show does not. Both tracks start scaleX at its far end even
// though Setup leaves it at 1.
var (
	showTracks = []track{
		{prop: element.ScaleY, from: 0, to: 1, curve: easing.QuartOut, geometry: true},
		{prop: element.ScaleX, from: 0, to: 1, curve: easing.QuartOut, geometry: true},
		{prop: element.Opacity, from: 0, to: 1, curve: easing.QuadOut},
	}
	hideTracks = []track{
		{prop: element.Height, to: 0, curve: easing.QuartIn, geometry: true, fromActualHeight: true},
		{prop: element.ScaleX, from: 1, to: 0, curve: easing.QuartIn, geometry: true},
		{prop: element.Opacity, from: 1, to: 0, curve: easing.QuadIn},
	}
)

// specs binds tracks to el with a shared duration. A non-nil override replaces
// the curve of every geometry track.
func specs(el *element.Element, tracks []track, p pivot, d time.Duration, override easing.Curve) []anim.Spec {
	out := make([]anim.Spec, 0, len(tracks))
	for _, tr := range tracks {
		from := tr.from
		if tr.fromActualHeight {
			from = p.y
		}
		curve := tr.curve
		if override != nil && tr.geometry {
			curve = override
		}
		out = append(out, anim.Spec{
			Target:   element.TargetOf(el, tr.prop),
			From:     from,
			To:       tr.to,
			Duration: d,
			Curve:    curve,
		})
	}
	return out
}
