// Package graph renders the raw-kind taxonomy for terminal and MCP output.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/swell/pkg/domain"
)

// Table renders the raw-to-change conversion as a markdown table.
func Table() string {
	var sb strings.Builder
	sb.WriteString("# Raw kind taxonomy\n\n")
	sb.WriteString("| Raw kind | Reduces to | Closes wave |\n")
	sb.WriteString("|----------|------------|-------------|\n")

	for _, kind := range domain.RawKinds() {
		change, err := domain.Classify(kind)
		cell := string(change)
		if err != nil {
			cell = "?"
		}
		closes := "-"
		if kind.Terminates() {
			closes = "yes"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", kind, cell, closes))
	}

	sb.WriteString("\nnode_update records are dropped before buffering; they never reach reduction.\n")
	return sb.String()
}

// Mermaid renders the conversion as a flowchart, one edge per raw kind.
// Terminators get thick edges; the filtered node_update kind a dotted one.
func Mermaid() string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	seen := make(map[string]bool)
	for _, kind := range domain.RawKinds() {
		change, err := domain.Classify(kind)
		if err != nil {
			continue
		}

		from := sanitizeMermaidID(string(kind))
		to := "c_" + sanitizeMermaidID(string(change))

		if !seen[from] {
			seen[from] = true
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", from, kind))
		}
		if !seen[to] {
			seen[to] = true
			sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", to, change))
		}

		arrow := "-->"
		switch {
		case kind == domain.RawNodeUpdate:
			arrow = "-. filtered .->"
		case kind.Terminates():
			arrow = "==>"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
