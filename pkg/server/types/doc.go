// Package types defines the JSON bodies exchanged by the kanjize HTTP API.
package types
