// Package bom turns a list of component records into a grouped bill of
// materials.
//
// # Pipeline
//
//  1. FilterExcluded drops records carrying an "exclude" field.
//  2. Group partitions the rest using Equivalent as the comparator.
//  3. BuildRow renders each group as one row in Columns order.
//  4. A RowWriter (CSV or XLSX) receives the header and the rows.
//  5. ReadAux rows from the hand-maintained "-aux.csv" file are appended.
//
// Generate runs the whole pipeline.
//
// # Equivalence
//
// Two records are equivalent when they agree on every HMT field
// (description, mfg1, mfg1pn, mfg2, mfg2pn) that either of them carries.
// Only when neither carries any HMT field are value, part name and
// footprint compared instead.
package bom
