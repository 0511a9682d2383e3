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
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/vine-io/hdbpmn/syntax"
	"gopkg.in/yaml.v2"
)

const (
	DefaultArrowMinSize       = 20
	DefaultReferenceImageSize = 1000
)

// Options configures a Parser.
type Options struct {
	// ArrowMinSize is the minimum width and height of edge boxes for an image
	// whose larger side is ReferenceImageSize.
	ArrowMinSize       float64 `yaml:"arrowMinSize"`
	ReferenceImageSize float64 `yaml:"referenceImageSize"`

	ExcludedCategories []string `yaml:"excludedCategories"`
	// ExcludedLabelCategories suppresses labels whose owner has one of these categories.
	ExcludedLabelCategories []string `yaml:"excludedLabelCategories"`

	TwoWayLabelLinking bool `yaml:"twoWayLabelLinking"`
	LinkPools          bool `yaml:"linkPools"`
	LinkLanes          bool `yaml:"linkLanes"`

	// ScaleToAnnotationWidth rescales geometry to the image using the
	// backgroundSize metadata marker.
	ScaleToAnnotationWidth bool `yaml:"scaleToAnnotationWidth"`

	Decoder ImageDecoder `yaml:"-"`
}

// Option represents a configuration option for Parser.
type Option func(o *Options)

func defaultOptions() Options {
	return Options{
		ArrowMinSize:           DefaultArrowMinSize,
		ReferenceImageSize:     DefaultReferenceImageSize,
		LinkPools:              true,
		LinkLanes:              true,
		ScaleToAnnotationWidth: true,
	}
}

func NewOptions(opts ...Option) Options {
	options := defaultOptions()
	for _, o := range opts {
		o(&options)
	}

	if options.Decoder == nil {
		options.Decoder = NewImageDecoder()
	}

	return options
}

func WithArrowMinSize(size float64) Option {
	return func(o *Options) {
		o.ArrowMinSize = size
	}
}

func WithReferenceImageSize(size float64) Option {
	return func(o *Options) {
		o.ReferenceImageSize = size
	}
}

// WithExcludedCategories drops annotations of the given categories from results.
func WithExcludedCategories(categories ...string) Option {
	return func(o *Options) {
		o.ExcludedCategories = append(o.ExcludedCategories, categories...)
	}
}

// WithExcludedLabelCategories skips labels of symbols with the given categories.
func WithExcludedLabelCategories(categories ...string) Option {
	return func(o *Options) {
		o.ExcludedLabelCategories = append(o.ExcludedLabelCategories, categories...)
	}
}

// WithTwoWayLabelLinking makes symbols reference their label as well.
func WithTwoWayLabelLinking(b bool) Option {
	return func(o *Options) {
		o.TwoWayLabelLinking = b
	}
}

func WithLinkPools(b bool) Option {
	return func(o *Options) {
		o.LinkPools = b
	}
}

func WithLinkLanes(b bool) Option {
	return func(o *Options) {
		o.LinkLanes = b
	}
}

func WithScaleToAnnotationWidth(b bool) Option {
	return func(o *Options) {
		o.ScaleToAnnotationWidth = b
	}
}

func WithImageDecoder(d ImageDecoder) Option {
	return func(o *Options) {
		o.Decoder = d
	}
}

// WithConfig replaces all options with cfg, keeping the current decoder when
// cfg has none.
func WithConfig(cfg Options) Option {
	return func(o *Options) {
		decoder := o.Decoder
		*o = cfg
		if o.Decoder == nil {
			o.Decoder = decoder
		}
	}
}

func (o *Options) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.ArrowMinSize, validation.Min(0.0)),
		validation.Field(&o.ReferenceImageSize, validation.Required, validation.Min(1.0)),
		validation.Field(&o.ExcludedCategories, validation.Each(validation.By(isCategory))),
		validation.Field(&o.ExcludedLabelCategories, validation.Each(validation.By(isCategory))),
	)
}

func isCategory(value interface{}) error {
	s, _ := value.(string)
	if !syntax.IsCategory(s) {
		return fmt.Errorf("unknown category %q", s)
	}
	return nil
}

// LoadOptions reads options from a YAML file. Fields absent from the file
// keep their defaults. The returned options carry no decoder.
func LoadOptions(path string) (Options, error) {
	options := defaultOptions()

	path, err := homedir.Expand(path)
	if err != nil {
		return options, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return options, err
	}
	if err = yaml.Unmarshal(data, &options); err != nil {
		return options, fmt.Errorf("parse %s: %v", path, err)
	}
	if err = options.Validate(); err != nil {
		return options, fmt.Errorf("invalid options in %s: %v", path, err)
	}

	return options, nil
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item] = struct{}{}
	}
	return out
}
