package domain

// conversion is the full classification table from raw notification kinds to
// change kinds. Every declared RawKind has an entry; the tree-level and
// generic signals map to ChangeUndefined because only a graph diff could say
// what they really meant.
var conversion = map[RawKind]ChangeKind{
	RawTreeUpdate:      ChangeUndefined,
	RawMonadTreeUpdate: ChangeUndefined,
	RawNodeUpdate:      ChangeUndefined,
	RawAddNode:         ChangeAddNode,
	RawCopyNode:        ChangeCopyNodes,
	RawFreeNode:        ChangeFreeNodes,
	RawAddLink:         ChangeLinkUpdate,
	RawPropertyUpdate:  ChangePropertyUpdate,
	RawUndo:            ChangeUndo,
}

// Classify translates a raw kind into the change kind it implies.
//
// It is total over the nine declared kinds. Any other value returns an
// *UnmappedKindError; since the taxonomy is closed at build time, hitting
// that path indicates a programming error (a new kind added without a table
// entry), not a recoverable runtime condition.
func Classify(kind RawKind) (ChangeKind, error) {
	change, ok := conversion[kind]
	if !ok {
		return "", &UnmappedKindError{Kind: kind}
	}
	return change, nil
}
