package replay

import (
	"fmt"

	"github.com/aretw0/swell/pkg/domain"
)

// nodeEvents are the raw kinds whose bridge hooks take a node subject.
var nodeEvents = map[domain.RawKind]struct{}{
	domain.RawAddNode:        {},
	domain.RawCopyNode:       {},
	domain.RawFreeNode:       {},
	domain.RawAddLink:        {},
	domain.RawPropertyUpdate: {},
	domain.RawNodeUpdate:     {},
}

// treeEvents are the raw kinds whose bridge hooks take a tree subject.
var treeEvents = map[domain.RawKind]struct{}{
	domain.RawTreeUpdate:      {},
	domain.RawMonadTreeUpdate: {},
}

// Lint inspects parsed steps for fixture smells that Feed accepts but that
// usually indicate a recording mistake. Findings are human-readable strings;
// an empty slice means the fixture looks clean.
func Lint(steps []Step) []string {
	var findings []string

	for i, step := range steps {
		kind := domain.RawKind(step.Event)
		if _, ok := nodeEvents[kind]; ok && step.Node == nil {
			findings = append(findings,
				fmt.Sprintf("step %d: %s names no node; the reduced change will have no subjects", i+1, step.Event))
		}
		if _, ok := treeEvents[kind]; ok && step.Tree == nil {
			findings = append(findings,
				fmt.Sprintf("step %d: %s names no tree", i+1, step.Event))
		}
	}

	if n := len(steps); n > 0 {
		last := domain.RawKind(steps[n-1].Event)
		if !last.Terminates() {
			findings = append(findings,
				fmt.Sprintf("fixture ends with %s, which closes no wave; trailing records will stay buffered", last))
		}
	}

	return findings
}
