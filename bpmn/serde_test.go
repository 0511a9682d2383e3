package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vine-io/hdbpmn/api"
)

const diagramBody = `<bpmndi:BPMNDiagram id="BPMNDiagram_1">
  <bpmndi:BPMNPlane id="BPMNPlane_1" bpmnElement="Process_1">
    <bpmndi:BPMNEdge id="Flow_1_di" bpmnElement="Flow_1">
      <di:waypoint x="10" y="20.5" />
      <di:waypoint x="-4" y="40" />
      <bpmndi:BPMNLabel />
    </bpmndi:BPMNEdge>
    <bpmndi:BPMNShape id="Sub_1_di" bpmnElement="Sub_1" isExpanded="TRUE">
      <dc:Bounds x="1" y="2" width="30" height="40" />
      <bpmndi:BPMNLabel>
        <dc:Bounds x="5" y="50" width="10" height="14" />
      </bpmndi:BPMNLabel>
    </bpmndi:BPMNShape>
    <camunda:note id="Note_1" />
  </bpmndi:BPMNPlane>
</bpmndi:BPMNDiagram>`

func TestDeserializeDiagram(t *testing.T) {
	doc, err := ReadBytes("inline.bpmn", []byte(definitions(diagramBody)))
	require.NoError(t, err)

	d, err := doc.Diagram()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "BPMNDiagram_1", d.Id)

	plane := d.Plane()
	require.NotNil(t, plane)
	assert.Equal(t, "Process_1", plane.Element)
	require.Len(t, plane.Shapes, 1)
	require.Len(t, plane.Edges, 1)

	shape := plane.Shapes[0]
	assert.Equal(t, "Sub_1", shape.ModelRef())
	assert.True(t, shape.Expanded())
	assert.Equal(t, api.BoundingBox{Left: 1, Top: 2, Right: 31, Bottom: 42}, shape.Bounds.Box())
	require.NotNil(t, shape.DiagramLabel())
	assert.Equal(t, &DiagramBounds{X: 5, Y: 50, Width: 10, Height: 14}, shape.Label.Bounds)

	edge := plane.Edges[0]
	assert.Equal(t, "Flow_1", edge.ModelRef())
	assert.False(t, edge.Expanded())
	assert.Equal(t, []api.Point{{X: 10, Y: 20.5}, {X: -4, Y: 40}}, edge.Points())
	require.NotNil(t, edge.Label)
	assert.Nil(t, edge.Label.Bounds)

	elements := plane.Elements()
	require.Len(t, elements, 2)
	assert.Equal(t, "Sub_1", elements[0].ModelRef(), "shapes come before edges")
}

func TestDeserializeOmgPrefixes(t *testing.T) {
	data := `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL" ` +
		`xmlns:bpmndi="http://www.omg.org/spec/BPMN/20100524/DI" ` +
		`xmlns:omgdc="http://www.omg.org/spec/DD/20100524/DC" ` +
		`xmlns:omgdi="http://www.omg.org/spec/DD/20100524/DI">` +
		`<bpmndi:BPMNDiagram><bpmndi:BPMNPlane>` +
		`<bpmndi:BPMNShape bpmnElement="a"><omgdc:Bounds x="0" y="0" width="1" height="1"/></bpmndi:BPMNShape>` +
		`<bpmndi:BPMNEdge bpmnElement="b"><omgdi:waypoint x="1" y="2"/></bpmndi:BPMNEdge>` +
		`</bpmndi:BPMNPlane></bpmndi:BPMNDiagram></definitions>`

	doc, err := ReadBytes("omg.bpmn", []byte(data))
	require.NoError(t, err)
	d, err := doc.Diagram()
	require.NoError(t, err)

	plane := d.Plane()
	require.Len(t, plane.Shapes, 1)
	assert.NotNil(t, plane.Shapes[0].Bounds)
	require.Len(t, plane.Edges, 1)
	assert.Len(t, plane.Edges[0].Waypoints, 1)

	prefix, ok := DIPrefix(doc.Root())
	assert.True(t, ok)
	assert.Equal(t, "omgdi", prefix)
}

func TestDeserializeInvalidCoordinate(t *testing.T) {
	body := `<bpmndi:BPMNDiagram><bpmndi:BPMNPlane>
  <bpmndi:BPMNShape id="Task_1_di" bpmnElement="Task_1"><dc:Bounds x="1" y="abc" width="1" height="1"/></bpmndi:BPMNShape>
</bpmndi:BPMNPlane></bpmndi:BPMNDiagram>`
	doc, err := ReadBytes("bad.bpmn", []byte(definitions(body)))
	require.NoError(t, err)

	_, err = doc.Diagram()
	assert.Equal(t, api.ErrInvalidBpmnAttribute, api.TypeOf(err))
	assert.Contains(t, err.Error(), `Task_1_di`)

	body = `<bpmndi:BPMNDiagram><bpmndi:BPMNPlane>
  <bpmndi:BPMNEdge id="Flow_1_di" bpmnElement="Flow_1"><di:waypoint x="1"/></bpmndi:BPMNEdge>
</bpmndi:BPMNPlane></bpmndi:BPMNDiagram>`
	doc, err = ReadBytes("bad.bpmn", []byte(definitions(body)))
	require.NoError(t, err)

	_, err = doc.Diagram()
	assert.Equal(t, api.ErrInvalidBpmnAttribute, api.TypeOf(err))
	assert.Contains(t, err.Error(), "has no y attrib")
}

func TestDeserializeUnsupported(t *testing.T) {
	elem := modelElement(t, `<bpmn:task id="a"/>`)
	_, err := Deserialize(elem)
	assert.Equal(t, api.ErrInternal, api.TypeOf(err))
}

func TestDIPrefix(t *testing.T) {
	doc, err := ReadBytes("inline.bpmn", []byte(definitions(diagramBody)))
	require.NoError(t, err)

	prefix, ok := DIPrefix(doc.Root())
	assert.True(t, ok)
	assert.Equal(t, "di", prefix)

	doc, err = ReadBytes("none.bpmn", []byte(`<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"/>`))
	require.NoError(t, err)
	_, ok = DIPrefix(doc.Root())
	assert.False(t, ok)
}

func TestDiagramExtent(t *testing.T) {
	doc, err := ReadFile("../testdata/sequence.bpmn")
	require.NoError(t, err)
	d, err := doc.Diagram()
	require.NoError(t, err)

	box, ok := DiagramExtent(d)
	assert.True(t, ok)
	assert.Equal(t, api.BoundingBox{Left: 100, Top: 78, Right: 396, Bottom: 158}, box)

	doc, err = ReadBytes("inline.bpmn", []byte(definitions(diagramBody)))
	require.NoError(t, err)
	d, err = doc.Diagram()
	require.NoError(t, err)

	box, ok = DiagramExtent(d)
	assert.True(t, ok)
	assert.Equal(t, api.BoundingBox{Left: -4, Top: 2, Right: 31, Bottom: 64}, box)

	_, ok = DiagramExtent(nil)
	assert.False(t, ok)
}
