package domain

import "time"

// ChangeKind is the coarse category of a reduced change event.
type ChangeKind string

const (
	ChangeAddNode        ChangeKind = "add_node"
	ChangeCopyNodes      ChangeKind = "copy_nodes"
	ChangeFreeNodes      ChangeKind = "free_nodes"
	ChangePropertyUpdate ChangeKind = "node_property_update"
	ChangeLinkUpdate     ChangeKind = "node_link_update"
	ChangeUndo           ChangeKind = "undo"

	// ChangeUndefined is the fallback for raw kinds whose true meaning cannot
	// be determined without inspecting the graph itself (tree-level and
	// generic node signals). Consumers that need precision must diff the
	// tree on their own when they see it.
	ChangeUndefined ChangeKind = "undefined"
)

// Change is the single event a closed wave reduces to.
type Change struct {
	// ID is a unique identifier assigned at reduction time.
	ID string `json:"id"`

	// Kind is the classification of the wave's leading run.
	Kind ChangeKind `json:"kind"`

	// Subjects lists the distinct entities of the leading run, in first
	// occurrence order. Nil for ChangeUndefined, where attribution is not
	// possible.
	Subjects []Subject `json:"subjects,omitempty"`

	// WaveSize is the number of records the closed wave contained,
	// including the terminating record.
	WaveSize int `json:"wave_size"`

	// At is the wall-clock time the wave closed.
	At time.Time `json:"at"`
}

// SubjectNames returns the instance names of the change's subjects, in order.
func (c Change) SubjectNames() []string {
	if len(c.Subjects) == 0 {
		return nil
	}
	names := make([]string, len(c.Subjects))
	for i, s := range c.Subjects {
		names[i] = s.Name
	}
	return names
}
