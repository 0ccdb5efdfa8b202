package domain

// SubjectKind distinguishes the two entity classes an event can concern.
type SubjectKind string

const (
	SubjectNode SubjectKind = "node"
	SubjectTree SubjectKind = "tree"
)

// Subject is an opaque, non-owning identifier for the entity a notification
// is about. It never holds a live reference into the host's graph, so a
// buffered wave cannot extend an entity's lifetime or race with mutations.
// The zero value means "no subject".
type Subject struct {
	Kind SubjectKind `json:"kind"`
	Type string      `json:"type"` // host type identifier, e.g. a node's bl_idname
	Name string      `json:"name"` // instance name, unique within its tree
}

// NodeSubject builds a Subject for a single node.
func NodeSubject(typ, name string) Subject {
	return Subject{Kind: SubjectNode, Type: typ, Name: name}
}

// TreeSubject builds a Subject for a whole tree.
func TreeSubject(typ, name string) Subject {
	return Subject{Kind: SubjectTree, Type: typ, Name: name}
}

// IsZero reports whether the subject is absent.
func (s Subject) IsZero() bool {
	return s == Subject{}
}

// Record pairs a raw notification kind with the subject it concerned.
// Records are immutable values; a wave is an ordered slice of them.
type Record struct {
	Kind    RawKind
	Subject Subject
}

// Matches reports whether two records are the same kind of event.
// The subject is deliberately ignored: reduction groups "the run of events
// of the same kind" regardless of which entities they touched.
func (r Record) Matches(other Record) bool {
	return r.Kind == other.Kind
}

// Is reports whether the record carries the given raw kind.
func (r Record) Is(kind RawKind) bool {
	return r.Kind == kind
}
