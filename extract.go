// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hdbpmn

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/vine-io/hdbpmn/api"
	"github.com/vine-io/hdbpmn/bpmn"
	"github.com/vine-io/hdbpmn/syntax"
	log "github.com/vine-io/vine/lib/logger"
)

// rawAnnotation is an annotation whose relations are still model element ids.
type rawAnnotation struct {
	api.Annotation

	prev  string
	next  string
	owner string
	pool  string
}

type extractor struct {
	name           string
	hasPools       bool
	excludedLabels map[string]struct{}

	raws []*rawAnnotation
}

// extract converts every shape and edge of the first diagram plane into raw
// annotations. Shapes come first, then edges, then associations, since an
// association may point at any other shape or edge.
func (p *Parser) extract(doc *bpmn.Document) ([]*rawAnnotation, error) {
	if doc.HasChoreography() {
		return nil, api.UnsupportedDiagramType("%s: BPMN Choreography diagrams are not implemented", doc.Name)
	}

	collaborations := doc.Collaborations()
	roots := append(collaborations, doc.Processes()...)
	index, err := bpmn.BuildIndex(roots...)
	if err != nil {
		return nil, err
	}

	diagram, err := doc.Diagram()
	if err != nil {
		return nil, err
	}
	if diagram == nil || diagram.Plane() == nil {
		log.Warnf("%s: document has no diagram", doc.Name)
		return []*rawAnnotation{}, nil
	}

	x := &extractor{
		name:           doc.Name,
		hasPools:       len(collaborations) > 0,
		excludedLabels: p.excludedLabels,
		raws:           make([]*rawAnnotation, 0),
	}

	type association struct {
		elem  *bpmn.DiagramEdge
		model *etree.Element
	}
	associations := make([]association, 0)

	for _, elem := range diagram.Plane().Elements() {
		id := elem.ModelRef()
		model, ok := index.Get(id)
		if !ok {
			if tag, foreign := index.Foreign(id); foreign {
				log.Warnf("%s: skipping %s element with custom namespace", doc.Name, tag)
				continue
			}
			return nil, api.MissingModelElement("%s: %s", doc.Name, id)
		}

		category, err := bpmn.Classify(elem, model)
		if err != nil {
			return nil, err
		}

		if syntax.IsShape(category) {
			err = x.shape(elem, model, category)
		} else if edge, ok := elem.(*bpmn.DiagramEdge); ok && category == syntax.Association {
			associations = append(associations, association{elem: edge, model: model})
		} else {
			err = x.edge(elem, model, category)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, a := range associations {
		if err = x.edge(a.elem, a.model, syntax.Association); err != nil {
			return nil, err
		}
	}

	return x.raws, nil
}

func (x *extractor) shape(elem bpmn.DiagramElement, model *etree.Element, category string) error {
	shape, ok := elem.(*bpmn.DiagramShape)
	if !ok || shape.Bounds == nil {
		return api.InvalidBpmnAttribute("%s: %s %s has no Bounds", x.name, category, elem.ModelRef())
	}

	a := &rawAnnotation{}
	a.Category = category
	a.ID = elem.ModelRef()
	a.Box = shape.Bounds.Box()
	a.Name, _ = bpmn.GetAttr(model, "name")
	a.ProcessRef, _ = bpmn.GetAttr(model, "processRef")

	if x.hasPools && category != syntax.Pool {
		// lanes are nested in one more laneSet than the other shapes
		parent := model.Parent()
		if category == syntax.Lane && parent != nil {
			parent = parent.Parent()
		}
		if parent != nil && parent.Tag == "process" && bpmn.IsModel(parent) {
			a.pool, _ = bpmn.GetAttr(parent, "id")
		}
	}

	if model.Tag == "textAnnotation" {
		if text := bpmn.ChildElement(model, "text"); text != nil {
			a.Name = text.Text()
		}
	}

	x.raws = append(x.raws, a)
	x.label(elem, model, category)
	return nil
}

func (x *extractor) edge(elem bpmn.DiagramElement, model *etree.Element, category string) error {
	var points []api.Point
	if edge, ok := elem.(*bpmn.DiagramEdge); ok {
		points = edge.Points()
	}
	if len(points) == 0 {
		return api.InvalidBpmnEdgeWithoutWaypoints("%s: %s %s without waypoints", x.name, category, elem.ModelRef())
	}

	prev, next, err := edgeEnds(model)
	if err != nil {
		return err
	}

	a := &rawAnnotation{prev: prev, next: next}
	a.Category = category
	a.ID = elem.ModelRef()
	a.Box = api.BoxFromPoints(points)
	a.Waypoints = points
	a.Name, _ = bpmn.GetAttr(model, "name")
	a.UpdateKeypoints()

	x.raws = append(x.raws, a)
	x.label(elem, model, category)
	return nil
}

// edgeEnds returns the ids of the elements an edge starts and ends at.
// Data associations are nested in the activity they read into or write from.
//
//	<task id="Activity_1">
//	  <dataInputAssociation id="DataInputAssociation_1">
//	    <sourceRef>DataObjectReference_1</sourceRef>
//	    <targetRef>Property_1</targetRef>
//	  </dataInputAssociation>
//	  <dataOutputAssociation id="DataOutputAssociation_1">
//	    <targetRef>DataObjectReference_2</targetRef>
//	  </dataOutputAssociation>
//	</task>
func edgeEnds(model *etree.Element) (prev, next string, err error) {
	id, _ := bpmn.GetAttr(model, "id")

	switch model.Tag {
	case "sequenceFlow", "messageFlow", "association":
		var ok bool
		if prev, ok = bpmn.GetAttr(model, "sourceRef"); !ok {
			return "", "", api.InvalidBpmnAttribute("%s %s has no sourceRef attrib", model.Tag, id)
		}
		if next, ok = bpmn.GetAttr(model, "targetRef"); !ok {
			return "", "", api.InvalidBpmnAttribute("%s %s has no targetRef attrib", model.Tag, id)
		}
	case "dataInputAssociation":
		source := bpmn.ChildElement(model, "sourceRef")
		if source == nil {
			return "", "", api.InvalidBpmnAttribute("%s %s has no sourceRef", model.Tag, id)
		}
		prev = strings.TrimSpace(source.Text())
		next = parentID(model)
	case "dataOutputAssociation":
		target := bpmn.ChildElement(model, "targetRef")
		if target == nil {
			return "", "", api.InvalidBpmnAttribute("%s %s has no targetRef", model.Tag, id)
		}
		prev = parentID(model)
		next = strings.TrimSpace(target.Text())
	default:
		return "", "", api.InvalidBpmnCategory("unknown edge tag: %s", model.Tag)
	}

	return prev, next, nil
}

func parentID(elem *etree.Element) string {
	parent := elem.Parent()
	if parent == nil {
		return ""
	}
	id, _ := bpmn.GetAttr(parent, "id")
	return id
}

// label appends a label annotation when the diagram element has a label with
// bounds and the model element a non-blank name. Label bounds are optional.
func (x *extractor) label(elem bpmn.DiagramElement, model *etree.Element, category string) {
	if _, ok := x.excludedLabels[category]; ok {
		return
	}

	label := elem.DiagramLabel()
	if label == nil || label.Bounds == nil {
		return
	}
	text, ok := bpmn.GetAttr(model, "name")
	if !ok || strings.TrimSpace(text) == "" {
		return
	}

	a := &rawAnnotation{owner: elem.ModelRef()}
	a.Category = syntax.Label
	a.Box = label.Bounds.Box()
	a.Name = text
	x.raws = append(x.raws, a)
}
