package syntax

// CocoCategory is one entry of the "categories" list of a COCO dataset.
type CocoCategory struct {
	Supercategory string   `json:"supercategory"`
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	LongName      string   `json:"longname"`
	Keypoints     []string `json:"keypoints,omitempty"`
}

// ArrowKeypoints are the keypoint names of edge categories.
var ArrowKeypoints = []string{"head", "tail"}

// CocoCategories enumerates the taxonomy in group order. Excluded categories are
// skipped, translated categories are renamed and emitted once.
func CocoCategories(excluded map[string]struct{}, translate map[string]string) []CocoCategory {
	seen := map[string]struct{}{}
	out := make([]CocoCategory, 0, len(all))

	for _, g := range Groups {
		for _, category := range g.Categories {
			if _, ok := excluded[category]; ok {
				continue
			}
			isEdge := IsEdge(category)
			if v, ok := translate[category]; ok {
				category = v
			}
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}

			longName, ok := longNames[category]
			if !ok {
				longName = SplitCamelCase(category)
			}
			c := CocoCategory{
				Supercategory: g.Name,
				ID:            len(out),
				Name:          category,
				LongName:      longName,
			}
			if isEdge {
				c.Keypoints = ArrowKeypoints
			}
			out = append(out, c)
		}
	}

	return out
}

// TaskTypesToTask collapses typed tasks (userTask, ...) into task.
func TaskTypesToTask() map[string]string {
	out := make(map[string]string, len(TaskTypeCategories))
	for _, c := range TaskTypeCategories {
		out[c] = Task
	}
	return out
}

// PlainActivityCategories are activities whose label lies inside the symbol.
func PlainActivityCategories() []string {
	skip := map[string]struct{}{}
	for _, c := range ActivitiesWithChildShapes {
		skip[c] = struct{}{}
	}
	out := make([]string, 0, len(ActivityCategories))
	for _, c := range ActivityCategories {
		if _, ok := skip[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}
