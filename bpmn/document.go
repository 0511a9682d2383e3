package bpmn

import (
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/vine-io/hdbpmn/api"
)

// Document is a parsed BPMN XML file. It is never mutated after loading.
type Document struct {
	Name string

	raw  []byte
	root *etree.Element
}

// ReadFile loads the BPMN XML file at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, api.Internal("read %s: %v", path, err)
	}
	return ReadBytes(filepath.Base(path), data)
}

// ReadBytes parses an in-memory BPMN XML document.
func ReadBytes(name string, data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, api.Internal("parse %s: %v", name, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "definitions" || !IsModel(root) {
		return nil, api.UnsupportedDiagramType("%s: root element is not bpmn definitions", name)
	}

	return &Document{Name: name, raw: data, root: root}, nil
}

func (d *Document) Root() *etree.Element {
	return d.root
}

func (d *Document) Collaborations() []*etree.Element {
	return ChildElements(d.root, "collaboration")
}

func (d *Document) Processes() []*etree.Element {
	return ChildElements(d.root, "process")
}

func (d *Document) HasChoreography() bool {
	return ChildElement(d.root, "choreography") != nil
}

// Diagram returns the first bpmndi:BPMNDiagram, or nil when the document has none.
func (d *Document) Diagram() (*Diagram, error) {
	for _, child := range d.root.ChildElements() {
		if !isBpmnDI(child, "BPMNDiagram") {
			continue
		}
		v, err := Deserialize(child)
		if err != nil {
			return nil, err
		}
		return v.(*Diagram), nil
	}
	return nil, nil
}

// LaneNodeRefs returns process/laneSet/lane/flowNodeRef elements. Nested lane
// sets are not visited.
func (d *Document) LaneNodeRefs() []*etree.Element {
	out := make([]*etree.Element, 0)
	for _, process := range d.Processes() {
		for _, laneSet := range ChildElements(process, "laneSet") {
			for _, lane := range ChildElements(laneSet, "lane") {
				out = append(out, ChildElements(lane, "flowNodeRef")...)
			}
		}
	}
	return out
}

// BackgroundWidth returns the width recorded in the metadata marker.
func (d *Document) BackgroundWidth() (float64, error) {
	return ParseBackgroundWidth(d.Name, d.raw)
}
