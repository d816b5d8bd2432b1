// Package normalize maps typed column values onto document nodes.
//
// Rules by column kind:
//   - integers: exact number node; NULL -> null
//   - floats: number node when finite, canonical decimal string otherwise; NULL -> null
//   - bit: bool node; NULL -> null
//   - character data and XML: string node; NULL -> "" (never null)
//   - numeric, big integers, GUIDs: canonical string; NULL -> null
//   - binary: standard Base64 string; NULL -> null
//   - temporal kinds: ISO-8601 string; NULL -> null
//
// The legacy DATETIME kind is reconstructed from its day count and 1/300 second
// fragments. The other temporal kinds are validated and decoded from their own
// wire layout; a malformed value becomes a null node unless the Normalizer was
// built with WithStrictTemporal.
//
// Every other kind fails with *UnsupportedKindError.
package normalize
