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
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrorType groups parse failures so a batch run can aggregate them.
type ErrorType string

const (
	ErrUnsupportedDiagramType          ErrorType = "UnsupportedDiagramType"
	ErrMissingModelElement             ErrorType = "MissingModelElement"
	ErrUnknownCategory                 ErrorType = "UnknownCategory"
	ErrInvalidBpmnCategory             ErrorType = "InvalidBpmnCategory"
	ErrInvalidBpmnEdgeWithoutWaypoints ErrorType = "InvalidBpmnEdgeWithoutWaypoints"
	ErrInvalidBpmnAttribute            ErrorType = "InvalidBpmnAttribute"
	ErrDuplicateModelElementId         ErrorType = "DuplicateModelElementId"
	ErrInvalidLaneReference            ErrorType = "InvalidLaneReference"
	ErrAssociationEndpointUnsupported  ErrorType = "AssociationEndpointUnsupported"
	ErrInvalidMetadata                 ErrorType = "InvalidMetadata"
	ErrInternal                        ErrorType = "Internal"
)

func (t ErrorType) String() string {
	return string(t)
}

// Error aborts the processing of one document.
type Error struct {
	Type    ErrorType `json:"type"`
	Details string    `json:"details,omitempty"`
	Caller  string    `json:"caller,omitempty"`
}

// New generates a custom error.
func New(typ ErrorType, details string) *Error {
	return &Error{Type: typ, Details: details}
}

// WithCaller fills Error.Caller
func (e *Error) WithCaller() *Error {
	_, file, line, _ := runtime.Caller(1)
	if index := strings.Index(file, "/src/"); index != -1 {
		file = file[index+5:]
	}
	file = strings.Replace(file, string(filepath.Separator), "/", -1)
	e.Caller = fmt.Sprintf("%s:%d", file, line)
	return e
}

func (e *Error) Error() string {
	if e.Details == "" {
		return string(e.Type)
	}
	return string(e.Type) + ": " + e.Details
}

// Is reports whether target is an *Error of the same type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// UnsupportedDiagramType generates an error for diagram kinds that are not parsed, e.g. choreographies.
func UnsupportedDiagramType(format string, a ...interface{}) *Error {
	return New(ErrUnsupportedDiagramType, fmt.Sprintf(format, a...))
}

// MissingModelElement generates an error for a DI element without model element.
func MissingModelElement(format string, a ...interface{}) *Error {
	return New(ErrMissingModelElement, fmt.Sprintf(format, a...))
}

// UnknownCategory generates an error for a tag outside the category taxonomy.
func UnknownCategory(format string, a ...interface{}) *Error {
	return New(ErrUnknownCategory, fmt.Sprintf(format, a...))
}

// InvalidBpmnCategory generates an error for events with illegal event definitions.
func InvalidBpmnCategory(format string, a ...interface{}) *Error {
	return New(ErrInvalidBpmnCategory, fmt.Sprintf(format, a...))
}

// InvalidBpmnEdgeWithoutWaypoints generates an error for edges without geometry.
func InvalidBpmnEdgeWithoutWaypoints(format string, a ...interface{}) *Error {
	return New(ErrInvalidBpmnEdgeWithoutWaypoints, fmt.Sprintf(format, a...))
}

// InvalidBpmnAttribute generates an error for a missing sourceRef or targetRef.
func InvalidBpmnAttribute(format string, a ...interface{}) *Error {
	return New(ErrInvalidBpmnAttribute, fmt.Sprintf(format, a...))
}

// DuplicateModelElementId generates an error for an ambiguous id.
func DuplicateModelElementId(format string, a ...interface{}) *Error {
	return New(ErrDuplicateModelElementId, fmt.Sprintf(format, a...))
}

// InvalidLaneReference generates an error for a dangling lane flowNodeRef.
func InvalidLaneReference(format string, a ...interface{}) *Error {
	return New(ErrInvalidLaneReference, fmt.Sprintf(format, a...))
}

// AssociationEndpointUnsupported generates an error for associations chained to associations.
func AssociationEndpointUnsupported(format string, a ...interface{}) *Error {
	return New(ErrAssociationEndpointUnsupported, fmt.Sprintf(format, a...))
}

// InvalidMetadata generates an error for a missing or malformed metadata comment.
func InvalidMetadata(format string, a ...interface{}) *Error {
	return New(ErrInvalidMetadata, fmt.Sprintf(format, a...))
}

// Internal generates an error for failures that are not caused by the document content.
func Internal(format string, a ...interface{}) *Error {
	return New(ErrInternal, fmt.Sprintf(format, a...))
}

// Equal tries to compare errors
func Equal(err1 error, err2 error) bool {
	verr1, ok1 := err1.(*Error)
	verr2, ok2 := err2.(*Error)

	if ok1 != ok2 {
		return false
	}

	if !ok1 {
		return err1 == err2
	}

	return verr1.Type == verr2.Type
}

// FromErr try to convert go error go *Error
func FromErr(err error) *Error {
	if err == nil {
		return nil
	}

	var verr *Error
	if errors.As(err, &verr) {
		return verr
	}

	return Internal("%s", err.Error())
}

// TypeOf returns the ErrorType of err, or an empty type for nil.
func TypeOf(err error) ErrorType {
	if err == nil {
		return ""
	}
	return FromErr(err).Type
}
