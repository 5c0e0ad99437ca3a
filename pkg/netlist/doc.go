// Package netlist loads KiCad netlist exports into component records.
//
// Two export formats are understood:
//
//   - the generic XML netlist written by Eeschema for BOM plugins
//     (`<export><components><comp ref="R1">...`), and
//   - the s-expression `.net` netlist (`(export (components (comp (ref R1) ...)))`).
//
// Load sniffs the format from the first non-blank byte. Only the design
// header, components and library parts are kept; nets are skipped.
//
// # Interesting components
//
// Eeschema exports every symbol, including power flags and mounting holes.
// A Filter drops those before a BOM is built. Patterns are regular
// expressions anchored at the start of the text, so "TP[0-9]+" drops
// "TP1" and "TP12" but not "R_TP1".
package netlist
