// Package linkedin extracts structured person and company records from
// saved LinkedIn HTML snapshots. Each snapshot embeds a JSON payload inside
// one of the page's <code> elements; the package locates that payload,
// flattens the entity records it contains into rows, and writes the result
// as CSV or JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g. goquery/, fs/, extract/).
package linkedin
