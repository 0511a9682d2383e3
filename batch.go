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
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/vine-io/hdbpmn/api"
	log "github.com/vine-io/vine/lib/logger"
	"go.uber.org/atomic"
)

// ImageExtensions are tried in order when looking for the image of a BPMN file.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp", ".gif"}

// Pair is one BPMN XML file and the image it annotates.
type Pair struct {
	BPMN  string `json:"bpmn"`
	Image string `json:"image"`
}

type Result struct {
	Pair
	Annotated *api.AnnotatedImage `json:"annotated,omitempty"`
	Err       *api.Error          `json:"error,omitempty"`
}

// Report summarizes a batch run. Results are in input order.
type Report struct {
	ID           string                `json:"id"`
	Total        int64                 `json:"total"`
	Succeeded    int64                 `json:"succeeded"`
	Failed       int64                 `json:"failed"`
	ErrorsByType map[api.ErrorType]int `json:"errorsByType"`
	Results      []*Result             `json:"results"`
}

// Batch parses pairs concurrently on a pool of size workers. A failing
// document is logged and recorded in the report; it never stops the batch.
// Pairs not yet started when ctx is done are recorded as failed.
func (p *Parser) Batch(ctx context.Context, pairs []Pair, size int) (*Report, error) {
	if size <= 0 {
		size = 1
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	report := &Report{
		ID:           uuid.New().String(),
		Total:        int64(len(pairs)),
		ErrorsByType: map[api.ErrorType]int{},
		Results:      make([]*Result, len(pairs)),
	}
	succeeded := atomic.NewInt64(0)
	failed := atomic.NewInt64(0)

	var wg sync.WaitGroup
	for i := range pairs {
		i, pair := i, pairs[i]
		wg.Add(1)
		err = pool.Submit(func() {
			defer wg.Done()

			result := &Result{Pair: pair}
			report.Results[i] = result

			if err := ctx.Err(); err != nil {
				result.Err = api.FromErr(err)
				failed.Inc()
				return
			}

			img, err := p.Parse(pair.BPMN, pair.Image)
			if err != nil {
				result.Err = api.FromErr(err)
				failed.Inc()
				log.Errorf("%s: %s: %s", pair.BPMN, result.Err.Type, result.Err.Details)
				return
			}
			result.Annotated = img
			succeeded.Inc()
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	report.Succeeded = succeeded.Load()
	report.Failed = failed.Load()
	for _, result := range report.Results {
		if result.Err != nil {
			report.ErrorsByType[result.Err.Type]++
		}
	}

	log.Infof("batch %s: %d documents, %d succeeded, %d failed", report.ID, report.Total, report.Succeeded, report.Failed)
	for typ, n := range report.ErrorsByType {
		log.Infof("batch %s: %d x %s", report.ID, n, typ)
	}

	return report, nil
}

// FindPairs walks bpmnDir for .bpmn files and pairs each with the image of
// the same base name in imgDir. imgDir defaults to the directory of the
// BPMN file. Files without an image are skipped with a warning.
func FindPairs(bpmnDir, imgDir string) ([]Pair, error) {
	pairs := make([]Pair, 0)
	err := filepath.WalkDir(bpmnDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".bpmn") {
			return nil
		}

		dir := imgDir
		if dir == "" {
			dir = filepath.Dir(path)
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		for _, ext := range ImageExtensions {
			img := filepath.Join(dir, stem+ext)
			if _, err := os.Stat(img); err == nil {
				pairs = append(pairs, Pair{BPMN: path, Image: img})
				return nil
			}
		}
		log.Warnf("%s: no image found in %s", path, dir)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].BPMN < pairs[j].BPMN })
	return pairs, nil
}
