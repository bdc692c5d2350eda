// Package compiler turns a markdown email draft into deliverable content.
//
// The pipeline has three small renderers and one orchestrator:
//
//   - CompileBody parses the markdown body (CommonMark plus tables and
//     strikethrough), rewrites local image references into cid: references
//     with fresh content-ids, and produces independent HTML and plain-text
//     renderings.
//   - RenderFooter turns the sender Identity into HTML and plain footers.
//   - Token/Beacon derive the reversible per-recipient tracking token and
//     the invisible tracking pixel markup.
//   - Compile combines the three into a CompiledDocument ready for the
//     message assembler or the remote scheduler.
//
// Everything here is synchronous, allocation-only work with no I/O, so it
// is safe to call from any goroutine without coordination.
package compiler
