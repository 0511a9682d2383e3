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

	"github.com/vine-io/hdbpmn/api"
	"github.com/vine-io/hdbpmn/bpmn"
	"github.com/vine-io/hdbpmn/syntax"
	log "github.com/vine-io/vine/lib/logger"
)

// link resolves the id relations of raw annotations into references of the
// returned collection.
func (p *Parser) link(doc *bpmn.Document, raws []*rawAnnotation) ([]*api.Annotation, error) {
	anns := make([]*api.Annotation, len(raws))
	refs := make(map[string]api.Ref, len(raws))
	for i, raw := range raws {
		a := raw.Annotation
		anns[i] = &a
		if !a.IsLabel() && a.ID != "" {
			refs[a.ID] = api.RefOf(i)
		}
	}

	if err := linkArrows(doc.Name, anns, raws, refs); err != nil {
		return nil, err
	}
	if err := p.linkLabels(doc.Name, anns, raws, refs); err != nil {
		return nil, err
	}
	if p.opts.LinkPools {
		linkPools(anns, raws)
	}
	if p.opts.LinkLanes {
		if err := linkLanes(doc, anns, refs); err != nil {
			return nil, err
		}
	}

	return anns, nil
}

func linkArrows(name string, anns []*api.Annotation, raws []*rawAnnotation, refs map[string]api.Ref) error {
	for i, raw := range raws {
		a := anns[i]
		if !a.IsEdge() {
			continue
		}

		ends := []struct {
			rel api.Relation
			id  string
		}{
			{api.RelationArrowPrev, raw.prev},
			{api.RelationArrowNext, raw.next},
		}
		for _, end := range ends {
			ref, ok := refs[end.id]
			if a.Category == syntax.Association {
				// TODO: link associations to other associations once a category can express it
				if !ok || api.Resolve(anns, ref).Category == syntax.Association {
					return api.AssociationEndpointUnsupported("%s: %s %s", name, a.ID, end.id)
				}
			} else if !ok {
				log.Debugf("%s: %s %s of %s has no annotation", name, end.rel, end.id, a.ID)
				ref = api.NoRef
			}
			a.Set(end.rel, ref)
		}
	}
	return nil
}

func (p *Parser) linkLabels(name string, anns []*api.Annotation, raws []*rawAnnotation, refs map[string]api.Ref) error {
	for i, raw := range raws {
		if !anns[i].IsLabel() {
			continue
		}
		ref, ok := refs[raw.owner]
		if !ok {
			return api.MissingModelElement("%s: label owner %s", name, raw.owner)
		}
		anns[i].TextBelongsTo = ref
		if p.opts.TwoWayLabelLinking {
			api.Resolve(anns, ref).TextBelongsTo = api.RefOf(i)
		}
	}
	return nil
}

// linkPools links shapes to the pool of their process. Collapsed pools have
// no processRef, so shapes of unknown processes get no pool.
func linkPools(anns []*api.Annotation, raws []*rawAnnotation) {
	pools := map[string]api.Ref{}
	for i, a := range anns {
		if a.Category == syntax.Pool && a.ProcessRef != "" {
			pools[a.ProcessRef] = api.RefOf(i)
		}
	}

	for i, raw := range raws {
		if raw.pool == "" {
			continue
		}
		anns[i].Pool = pools[raw.pool]
	}
}

// linkLanes links the flow nodes of top level lanes to their lane.
//
//	<laneSet id="LaneSet_1">
//	  <lane id="Lane_1" name="Claim officer">
//	    <flowNodeRef>Event_1</flowNodeRef>
func linkLanes(doc *bpmn.Document, anns []*api.Annotation, refs map[string]api.Ref) error {
	for _, nodeRef := range doc.LaneNodeRefs() {
		id := strings.TrimSpace(nodeRef.Text())
		node, ok := refs[id]
		if !ok {
			return api.InvalidLaneReference("%s: flowNodeRef %s", doc.Name, id)
		}

		laneID, _ := bpmn.GetAttr(nodeRef.Parent(), "id")
		lane, ok := refs[laneID]
		if !ok {
			return api.InvalidLaneReference("%s: lane %s has no shape", doc.Name, laneID)
		}
		api.Resolve(anns, node).Lane = lane
	}
	return nil
}
