package bpmn

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/vine-io/hdbpmn/api"
)

var deserializers = map[string]Deserializer{
	"BPMNDiagram": &diagramSerde{},
	"BPMNPlane":   &diagramPlaneSerde{},
	"BPMNShape":   &diagramShapeSerde{},
	"BPMNEdge":    &diagramEdgeSerde{},
	"BPMNLabel":   &diagramLabelSerde{},
}

type Deserializer interface {
	Deserialize(start *etree.Element) (any, error)
}

// Deserialize reads a bpmndi element regardless of the prefix it is bound to.
func Deserialize(start *etree.Element) (any, error) {
	deserializer, ok := deserializers[start.Tag]
	if !ok || !isBpmnDI(start, start.Tag) {
		return nil, api.Internal("%s not support to deserialize", start.FullTag())
	}

	return deserializer.Deserialize(start)
}

// DiagramElement is a bpmndi shape or edge pointing at a model element.
type DiagramElement interface {
	// ModelRef returns the bpmnElement attribute.
	ModelRef() string
	// Expanded reports the isExpanded attribute, false for edges.
	Expanded() bool
	// DiagramLabel returns the BPMNLabel child, or nil.
	DiagramLabel() *DiagramLabel
}

type Diagram struct {
	Id     string
	Planes []*DiagramPlane
}

// Plane returns the first plane of the diagram.
func (d *Diagram) Plane() *DiagramPlane {
	if len(d.Planes) == 0 {
		return nil
	}
	return d.Planes[0]
}

type DiagramPlane struct {
	Id      string
	Element string
	Shapes  []*DiagramShape
	Edges   []*DiagramEdge
}

// Elements returns shapes first, then edges, each in document order.
func (p *DiagramPlane) Elements() []DiagramElement {
	out := make([]DiagramElement, 0, len(p.Shapes)+len(p.Edges))
	for _, shape := range p.Shapes {
		out = append(out, shape)
	}
	for _, edge := range p.Edges {
		out = append(out, edge)
	}
	return out
}

type DiagramBounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (b *DiagramBounds) Box() api.BoundingBox {
	return api.BoxFromXYWH(b.X, b.Y, b.Width, b.Height)
}

type DiagramWaypoint struct {
	X float64
	Y float64
}

func (w *DiagramWaypoint) Point() api.Point {
	return api.Point{X: w.X, Y: w.Y}
}

type DiagramLabel struct {
	Bounds *DiagramBounds
}

type DiagramShape struct {
	Id         string
	Element    string
	IsExpanded bool
	Bounds     *DiagramBounds
	Label      *DiagramLabel
}

func (s *DiagramShape) ModelRef() string            { return s.Element }
func (s *DiagramShape) Expanded() bool              { return s.IsExpanded }
func (s *DiagramShape) DiagramLabel() *DiagramLabel { return s.Label }

type DiagramEdge struct {
	Id        string
	Element   string
	Waypoints []*DiagramWaypoint
	Label     *DiagramLabel
}

func (e *DiagramEdge) ModelRef() string            { return e.Element }
func (e *DiagramEdge) Expanded() bool              { return false }
func (e *DiagramEdge) DiagramLabel() *DiagramLabel { return e.Label }

// Points returns the waypoints in drawing order.
func (e *DiagramEdge) Points() []api.Point {
	out := make([]api.Point, len(e.Waypoints))
	for i, w := range e.Waypoints {
		out[i] = w.Point()
	}
	return out
}

type diagramSerde struct{}

func (s *diagramSerde) Deserialize(start *etree.Element) (any, error) {
	d := &Diagram{}

	d.Id, _ = getAttr(start.Attr, "id")

	d.Planes = make([]*DiagramPlane, 0)
	for _, child := range start.ChildElements() {
		if !isBpmnDI(child, "BPMNPlane") {
			continue
		}
		v, err := Deserialize(child)
		if err != nil {
			return nil, err
		}
		d.Planes = append(d.Planes, v.(*DiagramPlane))
	}

	return d, nil
}

type diagramPlaneSerde struct{}

func (s *diagramPlaneSerde) Deserialize(start *etree.Element) (any, error) {
	plane := &DiagramPlane{}

	plane.Id, _ = getAttr(start.Attr, "id")
	plane.Element, _ = getAttr(start.Attr, "bpmnElement")

	plane.Edges = []*DiagramEdge{}
	plane.Shapes = []*DiagramShape{}
	for _, child := range start.ChildElements() {
		if !isBpmnDI(child, "BPMNShape") && !isBpmnDI(child, "BPMNEdge") {
			continue
		}
		elem, err := Deserialize(child)
		if err != nil {
			return nil, err
		}
		if v, ok := elem.(*DiagramEdge); ok {
			plane.Edges = append(plane.Edges, v)
		}
		if v, ok := elem.(*DiagramShape); ok {
			plane.Shapes = append(plane.Shapes, v)
		}
	}

	return plane, nil
}

type diagramShapeSerde struct{}

func (s *diagramShapeSerde) Deserialize(start *etree.Element) (any, error) {
	shape := &DiagramShape{}

	shape.Id, _ = getAttr(start.Attr, "id")
	shape.Element, _ = getAttr(start.Attr, "bpmnElement")
	if v, ok := getAttr(start.Attr, "isExpanded"); ok {
		shape.IsExpanded = strings.EqualFold(strings.TrimSpace(v), "true")
	}

	for _, child := range start.ChildElements() {
		if isBpmnDI(child, "BPMNLabel") {
			v, err := new(diagramLabelSerde).Deserialize(child)
			if err != nil {
				return nil, err
			}
			shape.Label = v.(*DiagramLabel)
		}
		if isDC(child, "Bounds") && shape.Bounds == nil {
			bounds, err := readBounds(shape.Id, child)
			if err != nil {
				return nil, err
			}
			shape.Bounds = bounds
		}
	}

	return shape, nil
}

type diagramEdgeSerde struct{}

func (s *diagramEdgeSerde) Deserialize(start *etree.Element) (any, error) {
	edge := &DiagramEdge{}

	edge.Id, _ = getAttr(start.Attr, "id")
	edge.Element, _ = getAttr(start.Attr, "bpmnElement")

	edge.Waypoints = []*DiagramWaypoint{}
	for _, child := range start.ChildElements() {
		if isBpmnDI(child, "BPMNLabel") {
			v, err := new(diagramLabelSerde).Deserialize(child)
			if err != nil {
				return nil, err
			}
			edge.Label = v.(*DiagramLabel)
		}
		if isDI(child, "waypoint") {
			waypoint := &DiagramWaypoint{}
			var err error
			if waypoint.X, err = readCoordinate(edge.Id, child, "x"); err != nil {
				return nil, err
			}
			if waypoint.Y, err = readCoordinate(edge.Id, child, "y"); err != nil {
				return nil, err
			}
			edge.Waypoints = append(edge.Waypoints, waypoint)
		}
	}

	return edge, nil
}

type diagramLabelSerde struct{}

func (s *diagramLabelSerde) Deserialize(start *etree.Element) (any, error) {
	label := &DiagramLabel{}

	for _, child := range start.ChildElements() {
		if isDC(child, "Bounds") {
			owner := ""
			if parent := start.Parent(); parent != nil {
				owner, _ = getAttr(parent.Attr, "id")
			}
			bounds, err := readBounds(owner, child)
			if err != nil {
				return nil, err
			}
			label.Bounds = bounds
			break
		}
	}

	return label, nil
}

func readBounds(owner string, elem *etree.Element) (*DiagramBounds, error) {
	bounds := &DiagramBounds{}
	var err error
	if bounds.X, err = readCoordinate(owner, elem, "x"); err != nil {
		return nil, err
	}
	if bounds.Y, err = readCoordinate(owner, elem, "y"); err != nil {
		return nil, err
	}
	if bounds.Width, err = readCoordinate(owner, elem, "width"); err != nil {
		return nil, err
	}
	if bounds.Height, err = readCoordinate(owner, elem, "height"); err != nil {
		return nil, err
	}
	return bounds, nil
}

func readCoordinate(owner string, elem *etree.Element, name string) (float64, error) {
	s, ok := getAttr(elem.Attr, name)
	if !ok {
		return 0, api.InvalidBpmnAttribute("%s: %s has no %s attrib", owner, elem.FullTag(), name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, api.InvalidBpmnAttribute("%s: %s has invalid %s %q", owner, elem.FullTag(), name, s)
	}
	return v, nil
}
