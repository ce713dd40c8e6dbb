// Package plateio reads and writes plates as delimited text.
//
// The output format is one row per line, each cell fixed to three
// decimal places and right-justified in nine characters by default,
// comma-separated with no trailing comma. Input is free-form
// whitespace-separated numeric tokens in row-major order.
package plateio
