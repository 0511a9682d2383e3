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
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vine-io/hdbpmn/mock"
	"github.com/vine-io/hdbpmn/syntax"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, 20.0, o.ArrowMinSize)
	assert.Equal(t, 1000.0, o.ReferenceImageSize)
	assert.Empty(t, o.ExcludedCategories)
	assert.Empty(t, o.ExcludedLabelCategories)
	assert.False(t, o.TwoWayLabelLinking)
	assert.True(t, o.LinkPools)
	assert.True(t, o.LinkLanes)
	assert.True(t, o.ScaleToAnnotationWidth)
	assert.NotNil(t, o.Decoder)
	assert.NoError(t, o.Validate())

	o = NewOptions(
		WithArrowMinSize(10),
		WithReferenceImageSize(500),
		WithExcludedCategories(syntax.Group),
		WithExcludedLabelCategories(syntax.PlainActivityCategories()...),
		WithTwoWayLabelLinking(true),
		WithLinkPools(false),
		WithLinkLanes(false),
		WithScaleToAnnotationWidth(false),
	)
	assert.Equal(t, 10.0, o.ArrowMinSize)
	assert.Equal(t, 500.0, o.ReferenceImageSize)
	assert.Equal(t, []string{syntax.Group}, o.ExcludedCategories)
	assert.Contains(t, o.ExcludedLabelCategories, syntax.Task)
	assert.True(t, o.TwoWayLabelLinking)
	assert.False(t, o.LinkPools)
	assert.False(t, o.LinkLanes)
	assert.False(t, o.ScaleToAnnotationWidth)
	assert.NoError(t, o.Validate())
}

func TestOptionsValidate(t *testing.T) {
	o := NewOptions(WithExcludedCategories("participant"))
	err := o.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "participant")

	o = NewOptions(WithReferenceImageSize(0))
	assert.Error(t, o.Validate())

	o = NewOptions(WithArrowMinSize(-1))
	assert.Error(t, o.Validate())

	_, err = NewParser(WithExcludedLabelCategories("lane", "swimlane"))
	assert.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hdbpmn.yaml")
	data := `arrowMinSize: 12
excludedCategories:
  - group
excludedLabelCategories: [task, userTask]
linkLanes: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	o, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, o.ArrowMinSize)
	assert.Equal(t, 1000.0, o.ReferenceImageSize)
	assert.Equal(t, []string{syntax.Group}, o.ExcludedCategories)
	assert.Equal(t, []string{syntax.Task, "userTask"}, o.ExcludedLabelCategories)
	assert.True(t, o.LinkPools)
	assert.False(t, o.LinkLanes)

	ctrl := gomock.NewController(t)
	decoder := mock.NewMockImageDecoder(ctrl)
	p, err := NewParser(WithImageDecoder(decoder), WithConfig(o))
	require.NoError(t, err)
	assert.Equal(t, decoder, p.Options().Decoder)
	assert.Equal(t, 12.0, p.Options().ArrowMinSize)

	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	t.Setenv("HOME", dir)
	o, err = LoadOptions("~/hdbpmn.yaml")
	require.NoError(t, err)
	assert.Equal(t, 12.0, o.ArrowMinSize)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("excludedCategories: [swimlane]\n"), 0o644))
	_, err = LoadOptions(bad)
	assert.Error(t, err)

	_, err = LoadOptions(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
