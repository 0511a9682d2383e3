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

package api

import (
	"fmt"

	"github.com/vine-io/hdbpmn/syntax"
)

// Annotation is one typed, spatially anchored object of a diagram image.
// Relation fields reference other annotations of the same AnnotatedImage.
type Annotation struct {
	Category string `json:"category"`

	// ID is the BPMN model element id, empty for labels.
	ID string `json:"bpmn_id,omitempty"`

	Box       BoundingBox `json:"bbox"`
	Waypoints []Point     `json:"waypoints,omitempty"`
	Tail      *Point      `json:"tail,omitempty"`
	Head      *Point      `json:"head,omitempty"`
	Name      string      `json:"name,omitempty"`

	// ProcessRef is the process a pool stands for; empty for collapsed pools.
	ProcessRef string `json:"process_ref,omitempty"`

	ArrowPrev     Ref `json:"arrow_prev,omitempty"`
	ArrowNext     Ref `json:"arrow_next,omitempty"`
	TextBelongsTo Ref `json:"text_belongs_to,omitempty"`
	Pool          Ref `json:"pool,omitempty"`
	Lane          Ref `json:"lane,omitempty"`
}

func (a *Annotation) IsLabel() bool {
	return a.Category == syntax.Label
}

func (a *Annotation) IsEdge() bool {
	return syntax.IsEdge(a.Category)
}

// Get returns the reference stored for rel.
func (a *Annotation) Get(rel Relation) Ref {
	switch rel {
	case RelationArrowPrev:
		return a.ArrowPrev
	case RelationArrowNext:
		return a.ArrowNext
	case RelationTextBelongsTo:
		return a.TextBelongsTo
	case RelationPool:
		return a.Pool
	case RelationLane:
		return a.Lane
	}
	return NoRef
}

// Set stores ref for rel.
func (a *Annotation) Set(rel Relation, ref Ref) {
	switch rel {
	case RelationArrowPrev:
		a.ArrowPrev = ref
	case RelationArrowNext:
		a.ArrowNext = ref
	case RelationTextBelongsTo:
		a.TextBelongsTo = ref
	case RelationPool:
		a.Pool = ref
	case RelationLane:
		a.Lane = ref
	}
}

// UpdateKeypoints derives tail and head from the first and last waypoint.
func (a *Annotation) UpdateKeypoints() {
	if len(a.Waypoints) == 0 {
		a.Tail, a.Head = nil, nil
		return
	}
	tail := a.Waypoints[0]
	head := a.Waypoints[len(a.Waypoints)-1]
	a.Tail, a.Head = &tail, &head
}

func (a *Annotation) String() string {
	if a.ID == "" {
		return fmt.Sprintf("%s%s", a.Category, a.Box)
	}
	return fmt.Sprintf("%s[%s]%s", a.Category, a.ID, a.Box)
}

// AnnotatedImage holds the annotations of one (BPMN XML, image) pair.
type AnnotatedImage struct {
	Filename    string        `json:"file_name"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Annotations []*Annotation `json:"annotations"`
}

// Get resolves a reference, returning nil for NoRef.
func (m *AnnotatedImage) Get(ref Ref) *Annotation {
	return Resolve(m.Annotations, ref)
}

// Validate checks that every reference resolves inside the collection.
func (m *AnnotatedImage) Validate() error {
	return ValidateRefs(m.Annotations)
}

// Resolve returns the annotation ref points to, or nil.
func Resolve(anns []*Annotation, ref Ref) *Annotation {
	i := ref.Index()
	if i < 0 || i >= len(anns) {
		return nil
	}
	return anns[i]
}

// ValidateRefs checks that every reference of anns resolves inside anns.
func ValidateRefs(anns []*Annotation) error {
	for i, a := range anns {
		for _, rel := range Relations {
			ref := a.Get(rel)
			if ref.Valid() && ref.Index() >= len(anns) {
				return Internal("annotation %d (%s) has dangling %s reference %d", i, a.Category, rel, ref.Index())
			}
		}
	}
	return nil
}
