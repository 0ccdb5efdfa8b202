/*
Package domain contains the core domain models for the Swell coalescing engine.

It defines the two event taxonomies (raw host notifications and reduced
changes), the classification table between them, and the small value types
that flow through a wave. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - RawKind: one tag per low-level notification the host editor can fire.
  - ChangeKind: the coarse, deduplicated event kinds downstream consumers act on.
  - Record: a raw kind paired with the subject it concerns; grouping equality is kind-only.
  - Subject: an opaque identifier for the node or tree an event is about.
  - Change: the single reduced event produced when a wave closes.
*/
package domain
