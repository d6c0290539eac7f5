// Package path loads learning-path catalogs and computes per-course unlock
// states from the student's enrolled course set.
package path

// GateState is the computed unlock status of a course within a path.
type GateState int

const (
	// GateLocked is the zero value: a course not proven reachable stays
	// locked.
	GateLocked GateState = iota
	// GateEnrolled: the student is enrolled; enrollment always wins.
	GateEnrolled
	// GateStartable: first course of its stage, or the course immediately
	// before it in the same stage is enrolled.
	GateStartable
)

func (g GateState) String() string {
	switch g {
	case GateEnrolled:
		return "enrolled"
	case GateStartable:
		return "startable"
	case GateLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// EvaluateGates computes the gate state of every course in stage order.
// Gating never looks across stage boundaries: the first course of each
// stage is startable no matter what happened in earlier stages. Every
// course referenced in stages appears exactly once in the result.
func EvaluateGates(stages []Stage, enrolled map[int64]bool) map[int64]GateState {
	gates := make(map[int64]GateState)

	for _, stage := range stages {
		for i, course := range stage.Courses {
			switch {
			case enrolled[course.ID]:
				gates[course.ID] = GateEnrolled
			case i == 0 || enrolled[stage.Courses[i-1].ID]:
				gates[course.ID] = GateStartable
			default:
				gates[course.ID] = GateLocked
			}
		}
	}

	return gates
}

// EnrolledSet builds the enrolled course-id set from raw course ids.
func EnrolledSet(courseIDs []int64) map[int64]bool {
	set := make(map[int64]bool, len(courseIDs))
	for _, id := range courseIDs {
		set[id] = true
	}
	return set
}
