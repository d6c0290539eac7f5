package main

import (
	"context"
	"fmt"

	"github.com/learnhub-io/learnhub-cli/internal/path"
	"github.com/learnhub-io/learnhub-cli/internal/session"
)

func (a *app) cmdPath(ctx context.Context, args []string) error {
	loader, err := path.NewLoader(a.cfg.Paths.CatalogDir)
	if err != nil {
		return fmt.Errorf("load path catalogs: %w", err)
	}

	if len(args) == 0 {
		categories := loader.Categories()
		if len(categories) == 0 {
			fmt.Fprintf(a.out, "No learning paths found in %s\n", a.cfg.Paths.CatalogDir)
			return nil
		}
		fmt.Fprintln(a.out, "Learning paths:")
		for _, cat := range categories {
			p, _ := loader.Get(cat)
			fmt.Fprintf(a.out, "  %-20s %s (%s, %s)\n", cat, p.Title, p.Difficulty, p.EstimatedDuration)
		}
		return nil
	}

	p, ok := loader.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown learning path %q", args[0])
	}

	enrolled := map[int64]bool{}
	if a.session.State() == session.Authenticated {
		ids, err := a.views.EnrolledCourseIDs(ctx)
		if err != nil {
			fmt.Fprintf(a.out, "warning: enrollments: %v\n", err)
		}
		enrolled = path.EnrolledSet(ids)
	}
	gates := path.EvaluateGates(p.Stages, enrolled)

	fmt.Fprintf(a.out, "%s (%s, %s)\n", p.Title, p.Difficulty, p.EstimatedDuration)
	if p.Description != "" {
		fmt.Fprintf(a.out, "%s\n", p.Description)
	}
	for i, stage := range p.Stages {
		fmt.Fprintf(a.out, "\nStage %d: %s\n", i+1, stage.Title)
		for _, course := range stage.Courses {
			fmt.Fprintf(a.out, "  [%s] #%d %s\n", gateLabel(gates[course.ID]), course.ID, course.Title)
		}
	}
	return nil
}

func gateLabel(g path.GateState) string {
	switch g {
	case path.GateEnrolled:
		return "enrolled "
	case path.GateStartable:
		return "startable"
	default:
		return "locked   "
	}
}
