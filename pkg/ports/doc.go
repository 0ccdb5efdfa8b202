/*
Package ports defines the driven ports (interfaces) for the Swell coalescing
engine.

These interfaces decouple the core from external implementations, allowing the
same Coordinator to feed a debug trace, a metrics backend, or a change journal
without knowing any of them.

# Key Interfaces

  - Sink: Receives every buffered raw record and every reduced change.
  - Preferences: Host-owned runtime configuration (currently the debug flag).
  - Journal: Persists reduced changes for later inspection.
*/
package ports
