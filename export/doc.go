// Package export converts tag trees to JSON, YAML and CBOR.
//
// The conversion is one way: tag types do not survive, so a Byte and an
// Int with the same value export identically.
package export
