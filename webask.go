// Package webask answers natural language questions using the text of one or
// more web pages as the only source of truth. Pages are fetched one at a time,
// reduced to plain text, joined into a single context, and handed to a
// generative model together with the question.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package webask
