// Package postpack turns a single web page into a shareable post package:
// extracted title, summary and body text, a curated set of normalized
// images, keyword hashtags and an interleaved text document, bundled into
// one ZIP archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, zip/).
package postpack
