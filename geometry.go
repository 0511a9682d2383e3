package hdbpmn

import (
	"github.com/vine-io/hdbpmn/api"
	log "github.com/vine-io/vine/lib/logger"
)

// reconciler moves annotations from diagram coordinates into the pixel
// space of a width x height image.
type reconciler struct {
	name         string
	scale        float64
	width        float64
	height       float64
	arrowMinSize float64
}

func (r *reconciler) apply(anns []*api.Annotation) {
	for _, a := range anns {
		a.Box = a.Box.Scale(r.scale)
		if !a.Box.IsWithin(r.width, r.height) {
			log.Debugf("%s: clipping bb %s to img (%g,%g)", r.name, a.Box, r.width, r.height)
			a.Box = a.Box.Clip(r.width, r.height)
		}
	}

	for _, a := range anns {
		if len(a.Waypoints) == 0 {
			continue
		}
		for i := range a.Waypoints {
			a.Waypoints[i] = a.Waypoints[i].Scale(r.scale)
		}
		a.UpdateKeypoints()
	}

	for _, a := range anns {
		if a.IsEdge() {
			a.Box = a.Box.PadMinSize(r.arrowMinSize, r.arrowMinSize).Fit(r.width, r.height)
		}
	}
}
