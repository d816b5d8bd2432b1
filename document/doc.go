// Package document provides the generic intermediate value a result-set row is
// converted into before decoding: an ordered mapping from column name to Node.
//
// A Node is one of null, boolean, number, string or a nested Document. Numbers
// keep an exact int64 for integral sources and a finite float64 otherwise;
// anything else (non-finite floats, decimals, GUIDs, blobs) is represented by
// its canonical string rendering.
//
// Documents render to YAML (gopkg.in/yaml.v3) and JSON preserving column order.
package document
