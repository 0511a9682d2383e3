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
	"strconv"
	"strings"
)

// Ref points to another annotation of the same AnnotatedImage. The zero
// value refers to nothing.
type Ref int32

const NoRef Ref = 0

// RefOf returns the reference to the annotation at index i.
func RefOf(i int) Ref {
	return Ref(i + 1)
}

// Index returns the position of the referenced annotation, or -1.
func (r Ref) Index() int {
	return int(r) - 1
}

func (r Ref) Valid() bool {
	return r > NoRef
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(r.Index())), nil
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*r = NoRef
		return nil
	}
	i, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid annotation reference %s: %v", text, err)
	}
	if i < 0 {
		return fmt.Errorf("invalid annotation reference %d", i)
	}
	*r = RefOf(i)
	return nil
}

// Relation names a reference field of an Annotation.
type Relation int32

const (
	RelationArrowPrev Relation = iota + 1
	RelationArrowNext
	RelationTextBelongsTo
	RelationPool
	RelationLane
)

// Relations lists every relation in export order.
var Relations = []Relation{
	RelationArrowPrev,
	RelationArrowNext,
	RelationTextBelongsTo,
	RelationPool,
	RelationLane,
}

func (m Relation) Readably() string {
	switch m {
	case RelationArrowPrev:
		return "arrow_prev"
	case RelationArrowNext:
		return "arrow_next"
	case RelationTextBelongsTo:
		return "text_belongs_to"
	case RelationPool:
		return "pool"
	case RelationLane:
		return "lane"
	default:
		return "unknown"
	}
}

func (m Relation) String() string {
	return m.Readably()
}

func (m Relation) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.Readably())), nil
}

func (m *Relation) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(data), `"`) {
	case "arrow_prev":
		*m = RelationArrowPrev
	case "arrow_next":
		*m = RelationArrowNext
	case "text_belongs_to":
		*m = RelationTextBelongsTo
	case "pool":
		*m = RelationPool
	case "lane":
		*m = RelationLane
	default:
		*m = 0
	}
	return nil
}
