// Package luminary provides the backend for a biographical dashboard.
// It fetches encyclopedia entries, quotations, and knowledge-graph data
// for notable people, extracts structured timelines and works listings
// from unstructured biography text, and answers role-play questions in a
// person's voice via a generative model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., wikipedia/, sqlite/, gemini/).
package luminary
