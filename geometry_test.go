package hdbpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vine-io/hdbpmn/api"
	"github.com/vine-io/hdbpmn/syntax"
)

func TestReconcile(t *testing.T) {
	anns := []*api.Annotation{
		{Category: syntax.Task, Box: api.BoxFromXYWH(-10, 10, 50, 40)},
		{
			Category:  syntax.SequenceFlow,
			Box:       api.BoxFromPoints([]api.Point{{X: 40, Y: 30}, {X: 40, Y: 90}}),
			Waypoints: []api.Point{{X: 40, Y: 30}, {X: 40, Y: 90}},
		},
		{
			Category:  syntax.MessageFlow,
			Box:       api.BoxFromPoints([]api.Point{{X: 0, Y: 2}, {X: 3, Y: 2}}),
			Waypoints: []api.Point{{X: 0, Y: 2}, {X: 3, Y: 2}},
		},
		{Category: syntax.Label, Box: api.BoxFromXYWH(90, 90, 40, 14)},
	}

	r := &reconciler{name: "test.bpmn", scale: 2, width: 200, height: 150, arrowMinSize: 16}
	r.apply(anns)

	assert.Equal(t, api.BoundingBox{Left: 0, Top: 20, Right: 80, Bottom: 100}, anns[0].Box)

	assert.Equal(t, api.BoundingBox{Left: 72, Top: 60, Right: 88, Bottom: 150}, anns[1].Box)
	assert.Equal(t, &api.Point{X: 80, Y: 60}, anns[1].Tail)
	assert.Equal(t, &api.Point{X: 80, Y: 180}, anns[1].Head)

	// padded around y=4, then moved inside the canvas
	assert.Equal(t, api.BoundingBox{Left: 0, Top: 0, Right: 16, Bottom: 16}, anns[2].Box)

	assert.Equal(t, api.BoundingBox{Left: 180, Top: 150, Right: 200, Bottom: 150}, anns[3].Box)
	assert.Nil(t, anns[3].Tail)
}
