package hdbpmn

import "github.com/vine-io/hdbpmn/api"

// filter drops annotations of excluded categories together with their
// labels, and re-indexes the references of what is left. References to
// dropped annotations are cleared.
func (p *Parser) filter(anns []*api.Annotation) []*api.Annotation {
	if len(p.excluded) == 0 {
		return anns
	}

	keep := make([]bool, len(anns))
	for i, a := range anns {
		_, excluded := p.excluded[a.Category]
		keep[i] = !excluded
	}
	for i, a := range anns {
		if !a.IsLabel() || !keep[i] {
			continue
		}
		if owner := a.TextBelongsTo; owner.Valid() && !keep[owner.Index()] {
			keep[i] = false
		}
	}

	remap := make([]api.Ref, len(anns))
	out := make([]*api.Annotation, 0, len(anns))
	for i, a := range anns {
		if keep[i] {
			remap[i] = api.RefOf(len(out))
			out = append(out, a)
		}
	}

	for _, a := range out {
		for _, rel := range api.Relations {
			if ref := a.Get(rel); ref.Valid() {
				a.Set(rel, remap[ref.Index()])
			}
		}
	}

	return out
}
