package bpmn

import "github.com/vine-io/hdbpmn/api"

// DiagramExtent returns the union of every shape and label bound and every
// waypoint of the first plane. ok is false for an empty diagram.
func DiagramExtent(d *Diagram) (box api.BoundingBox, ok bool) {
	if d == nil || d.Plane() == nil {
		return box, false
	}

	add := func(b api.BoundingBox) {
		if !ok {
			box, ok = b, true
			return
		}
		box = box.Union(b)
	}

	plane := d.Plane()
	for _, shape := range plane.Shapes {
		if shape.Bounds != nil {
			add(shape.Bounds.Box())
		}
		if shape.Label != nil && shape.Label.Bounds != nil {
			add(shape.Label.Bounds.Box())
		}
	}
	for _, edge := range plane.Edges {
		if len(edge.Waypoints) != 0 {
			add(api.BoxFromPoints(edge.Points()))
		}
		if edge.Label != nil && edge.Label.Bounds != nil {
			add(edge.Label.Bounds.Box())
		}
	}

	return box, ok
}
