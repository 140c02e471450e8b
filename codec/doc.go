// Package codec defines the pluggable serialization capability used by
// confy to move typed configuration values to and from their on-disk
// text representation.
//
// A [Codec] pairs an encoder and a decoder for one structured-text
// format together with the file extension that identifies documents in
// that format. Exactly one codec is active per store: the root confy
// package selects one at build time (TOML unless the confy_yaml or
// confy_json build tag is set), and callers that need a different
// format inject one explicitly via confy.NewStore.
//
// Codecs perform no I/O. Encoding either returns a complete document or
// an error; it never produces partial output. Decoding tolerates
// unknown fields in the document but reports malformed input as an
// error rather than silently dropping data.
package codec
