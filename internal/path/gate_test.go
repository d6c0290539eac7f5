package path

import "testing"

func stage(title string, ids ...int64) Stage {
	s := Stage{Title: title}
	for _, id := range ids {
		s.Courses = append(s.Courses, PathCourse{ID: id, Title: title})
	}
	return s
}

func TestEvaluateGates_WithinStage(t *testing.T) {
	stages := []Stage{stage("Foundations", 1, 2, 3)}
	gates := EvaluateGates(stages, EnrolledSet([]int64{1}))

	want := map[int64]GateState{1: GateEnrolled, 2: GateStartable, 3: GateLocked}
	for id, state := range want {
		if gates[id] != state {
			t.Errorf("gates[%d] = %v, want %v", id, gates[id], state)
		}
	}
}

func TestEvaluateGates_NothingEnrolled(t *testing.T) {
	stages := []Stage{
		stage("Foundations", 1, 2),
		stage("Intermediate", 3, 4),
	}
	gates := EvaluateGates(stages, nil)

	// first course of every stage is startable, the rest locked
	want := map[int64]GateState{1: GateStartable, 2: GateLocked, 3: GateStartable, 4: GateLocked}
	for id, state := range want {
		if gates[id] != state {
			t.Errorf("gates[%d] = %v, want %v", id, gates[id], state)
		}
	}
}

func TestEvaluateGates_NoCrossStageGating(t *testing.T) {
	// stage 2 opens regardless of stage 1 completion
	stages := []Stage{
		stage("Foundations", 1, 2),
		stage("Intermediate", 3, 4),
	}
	gates := EvaluateGates(stages, EnrolledSet(nil))

	if gates[3] != GateStartable {
		t.Errorf("gates[3] = %v, want startable even with stage 1 untouched", gates[3])
	}
}

func TestEvaluateGates_EnrollmentWinsOverLock(t *testing.T) {
	stages := []Stage{stage("Foundations", 1, 2, 3)}
	// enrolled in course 3 even though 2 was never started
	gates := EvaluateGates(stages, EnrolledSet([]int64{3}))

	if gates[3] != GateEnrolled {
		t.Errorf("gates[3] = %v, want enrolled", gates[3])
	}
	if gates[2] != GateLocked {
		t.Errorf("gates[2] = %v, want locked", gates[2])
	}
}

func TestEvaluateGates_Total(t *testing.T) {
	stages := []Stage{
		stage("A", 1, 2, 3),
		stage("B", 4, 5),
	}
	gates := EvaluateGates(stages, EnrolledSet([]int64{2, 99}))

	if len(gates) != 5 {
		t.Fatalf("len(gates) = %d, want every referenced course exactly once", len(gates))
	}
	for _, id := range []int64{1, 2, 3, 4, 5} {
		if _, ok := gates[id]; !ok {
			t.Errorf("gates missing course %d", id)
		}
	}
	// ids outside the path do not leak in
	if _, ok := gates[99]; ok {
		t.Error("gates contains unreferenced course 99")
	}
}

func TestGateState_ZeroValueIsLocked(t *testing.T) {
	// a lookup that misses the map must read as locked, never enrolled
	gates := EvaluateGates([]Stage{stage("Foundations", 1)}, nil)
	if gates[999] != GateLocked {
		t.Errorf("gates[999] = %v, want locked for unknown courses", gates[999])
	}

	var zero GateState
	if zero != GateLocked {
		t.Errorf("zero GateState = %v, want locked", zero)
	}
}

func TestEvaluateGates_MidStageUnlock(t *testing.T) {
	stages := []Stage{stage("Foundations", 1, 2, 3)}
	gates := EvaluateGates(stages, EnrolledSet([]int64{1, 2}))

	want := map[int64]GateState{1: GateEnrolled, 2: GateEnrolled, 3: GateStartable}
	for id, state := range want {
		if gates[id] != state {
			t.Errorf("gates[%d] = %v, want %v", id, gates[id], state)
		}
	}
}
