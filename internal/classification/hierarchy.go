package classification

import (
	"strings"

	"arsipku/internal/model"
)

// Group is one main category with its direct and transitive children.
type Group struct {
	Main     model.Classification
	Children []model.Classification
}

// Tree groups classifications for display: sorted by numeric-aware
// code order, one Group per main category (a single 3-digit segment),
// children being every code prefixed by mainCode+".". Codes with
// dotted segments but no existing main-category parent are surfaced as
// orphans rather than dropped.
func Tree(items []model.Classification) (groups []Group, orphans []model.Classification) {
	sorted := make([]model.Classification, len(items))
	copy(sorted, items)
	SortByCode(sorted)

	mains := make(map[string]int) // main code -> index into groups
	for _, c := range sorted {
		if IsMainCategory(c.Code) {
			mains[c.Code] = len(groups)
			groups = append(groups, Group{Main: c})
		}
	}

	for _, c := range sorted {
		if IsMainCategory(c.Code) {
			continue
		}
		head := c.Code
		if idx := strings.Index(head, "."); idx >= 0 {
			head = head[:idx]
		}
		if gi, ok := mains[head]; ok {
			groups[gi].Children = append(groups[gi].Children, c)
		} else {
			orphans = append(orphans, c)
		}
	}
	return groups, orphans
}
