// Package genicam reads GenICam feature description XML and indexes it.
//
// The document is decoded into a generic element tree (Node) rather than a
// typed schema: only a handful of element and attribute names matter for
// generation, and camera vendors extend the schema freely.
//
// An Index is built once per document. It maps feature names to nodes,
// assigns every named node a unique EPICS record name of at most 20
// characters, and remembers category names in document order. Record names
// are derived deterministically, so regenerating from the same XML keeps
// existing databases, autosave files and screens valid.
package genicam
