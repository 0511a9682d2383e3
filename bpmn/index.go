package bpmn

import (
	"github.com/beevik/etree"
	"github.com/tidwall/btree"
	"github.com/vine-io/hdbpmn/api"
	log "github.com/vine-io/vine/lib/logger"
)

var loopCharacteristics = map[string]struct{}{
	"multiInstanceLoopCharacteristics": {},
	"standardLoopCharacteristics":      {},
}

// data elements that modelers sometimes list more than once
var repeatableData = map[string]struct{}{
	"dataObjectReference": {},
	"dataStoreReference":  {},
	"dataState":           {},
}

// Index maps model element ids to elements of the BPMN model namespace.
type Index struct {
	elements *btree.Map[string, *etree.Element]
	// id -> full tag of elements outside the model namespace
	foreign map[string]string
}

// BuildIndex walks the given subtrees breadth first and collects every model
// element declaring an id. Elements of other namespaces are neither indexed
// nor descended into.
func BuildIndex(roots ...*etree.Element) (*Index, error) {
	x := &Index{
		elements: &btree.Map[string, *etree.Element]{},
		foreign:  map[string]string{},
	}

	for _, root := range roots {
		queue := []*etree.Element{root}
		for len(queue) != 0 {
			elem := queue[0]
			queue = queue[1:]

			for _, child := range elem.ChildElements() {
				if !IsModel(child) {
					if id, ok := getAttr(child.Attr, "id"); ok {
						if _, exists := x.foreign[id]; !exists {
							x.foreign[id] = child.FullTag()
						}
						log.Warnf("skipping %s element %s with custom namespace", child.FullTag(), id)
					}
					continue
				}

				queue = append(queue, child)

				id, ok := getAttr(child.Attr, "id")
				if !ok {
					continue
				}
				existing, ok := x.elements.Get(id)
				if !ok {
					x.elements.Set(id, child)
					continue
				}

				if _, ok := loopCharacteristics[child.Tag]; ok && child.Parent() == existing {
					continue
				}
				if _, ok := repeatableData[child.Tag]; ok && existing.Tag == child.Tag {
					continue
				}
				return nil, api.DuplicateModelElementId("%s (existing=%s, new=%s)", id, existing.Tag, child.Tag)
			}
		}
	}

	return x, nil
}

func (x *Index) Get(id string) (*etree.Element, bool) {
	return x.elements.Get(id)
}

// Foreign returns the tag of a skipped element of another namespace.
func (x *Index) Foreign(id string) (string, bool) {
	tag, ok := x.foreign[id]
	return tag, ok
}

func (x *Index) Len() int {
	return x.elements.Len()
}

// Scan iterates the indexed elements in id order until fn returns false.
func (x *Index) Scan(fn func(id string, elem *etree.Element) bool) {
	x.elements.Scan(fn)
}
