// Package content implements the editable rich-content region: a small
// block/span document parsed from and serialized to an HTML fragment, with a
// caret and selection tracked in grapheme offsets over the plain-text
// projection.
//
// The package is the composer's editing primitive. It knows nothing about
// rendering, key bindings, mentions, or the host contract; those live in the
// composer package.
package content
