// Package fields loads typed field documents and renders them through the
// serialize formatters.
//
// A document keeps its fields as an array of objects:
//
//	{"fields": [{"name": "created", "type": "timestamp", "value": 1700000000}]}
//
// The array location is a gjson path, so nested payloads such as
// "data.agent.fields" work as well.
package fields
