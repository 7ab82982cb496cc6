// Package render serializes an expanded instance graph into its XML graph
// description: a type-level section listing every device and message type
// with their fields, pins and embedded code fragments, and an
// instance-level section listing every device instance and edge. Output is
// bit-for-bit reproducible for identical inputs.
package render
