package progress

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// containsFold reports whether s contains substr under Unicode case
// folding. Casers are stateful, so one is built per call.
func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

// FilterStudents returns the aggregates matching both filters. search
// matches first name, last name, username or email; courseFilter matches
// any enrolled course name. Empty filters match everything. Input order is
// preserved.
func FilterStudents(aggregates []StudentAggregate, search, courseFilter string) []StudentAggregate {
	out := make([]StudentAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		if !matchesSearch(agg, search) {
			continue
		}
		if !matchesCourse(agg, courseFilter) {
			continue
		}
		out = append(out, agg)
	}
	return out
}

func matchesSearch(agg StudentAggregate, search string) bool {
	if search == "" {
		return true
	}
	return containsFold(agg.FirstName, search) ||
		containsFold(agg.LastName, search) ||
		containsFold(agg.Username, search) ||
		containsFold(agg.Email, search)
}

func matchesCourse(agg StudentAggregate, courseFilter string) bool {
	if courseFilter == "" {
		return true
	}
	for _, e := range agg.Enrollments {
		if containsFold(e.CourseName, courseFilter) {
			return true
		}
	}
	return false
}

// CourseNames returns the distinct course names across all aggregates,
// sorted, for filter menus.
func CourseNames(aggregates []StudentAggregate) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, agg := range aggregates {
		for _, e := range agg.Enrollments {
			if _, ok := seen[e.CourseName]; ok {
				continue
			}
			seen[e.CourseName] = struct{}{}
			names = append(names, e.CourseName)
		}
	}
	sort.Strings(names)
	return names
}
