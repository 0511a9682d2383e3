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
	"path/filepath"

	"github.com/vine-io/hdbpmn/api"
	"github.com/vine-io/hdbpmn/bpmn"
	log "github.com/vine-io/vine/lib/logger"
)

// Parser turns BPMN XML files and their images into annotations. A Parser
// holds no per-document state and may be shared between goroutines.
type Parser struct {
	opts Options

	excluded       map[string]struct{}
	excludedLabels map[string]struct{}
}

func NewParser(opts ...Option) (*Parser, error) {
	options := NewOptions(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		opts:           options,
		excluded:       toSet(options.ExcludedCategories),
		excludedLabels: toSet(options.ExcludedLabelCategories),
	}
	return p, nil
}

func (p *Parser) Options() Options {
	return p.opts
}

// Parse reads the BPMN XML at bpmnPath and the image at imgPath and returns
// annotations in image pixel space.
func (p *Parser) Parse(bpmnPath, imgPath string) (*api.AnnotatedImage, error) {
	doc, err := bpmn.ReadFile(bpmnPath)
	if err != nil {
		return nil, err
	}

	anns, err := p.parseDocument(doc)
	if err != nil {
		log.Errorf("error while parsing: %s", bpmnPath)
		return nil, err
	}

	width, height, err := p.opts.Decoder.DecodeSize(imgPath)
	if err != nil {
		return nil, err
	}

	scale := 1.0
	arrowMinSize := p.opts.ArrowMinSize
	if p.opts.ScaleToAnnotationWidth {
		background, err := doc.BackgroundWidth()
		if err != nil {
			return nil, err
		}
		scale = float64(width) / background
		arrowMinSize = p.opts.ArrowMinSize * float64(maxInt(width, height)) / p.opts.ReferenceImageSize
	}

	r := &reconciler{
		name:         doc.Name,
		scale:        scale,
		width:        float64(width),
		height:       float64(height),
		arrowMinSize: arrowMinSize,
	}
	r.apply(anns)

	img := &api.AnnotatedImage{
		Filename:    filepath.Base(imgPath),
		Width:       width,
		Height:      height,
		Annotations: p.filter(anns),
	}
	if err = img.Validate(); err != nil {
		return nil, err
	}

	return img, nil
}

// ParseAnnotations returns the annotations of a BPMN XML file in diagram
// coordinates, without reading any image.
func (p *Parser) ParseAnnotations(bpmnPath string) ([]*api.Annotation, error) {
	doc, err := bpmn.ReadFile(bpmnPath)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument(doc)
}

// ParseDocument is ParseAnnotations for an already loaded document.
func (p *Parser) ParseDocument(doc *bpmn.Document) ([]*api.Annotation, error) {
	anns, err := p.parseDocument(doc)
	if err != nil {
		return nil, err
	}

	anns = p.filter(anns)
	if err = api.ValidateRefs(anns); err != nil {
		return nil, err
	}
	return anns, nil
}

func (p *Parser) parseDocument(doc *bpmn.Document) ([]*api.Annotation, error) {
	raws, err := p.extract(doc)
	if err != nil {
		return nil, err
	}
	return p.link(doc, raws)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
