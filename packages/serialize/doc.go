// Package serialize renders typed field values into display strings.
//
// Supported tags:
//   - str, url: returned unchanged
//   - bool: "yes" or "no"
//   - timestamp: Unix seconds rendered as a local date-time
//   - duration, number, var: stringified as is
//   - sha256: masked, only the last four characters shown
//   - password: always ten asterisks
//
// The package level functions are pure. Registry dispatches by Tag and
// carries the timezone used for timestamps.
package serialize
