// Package composer provides a Bubble Tea rich-text comment composer backed by
// the content package.
//
// The component owns an editable region with inline formatting (bold,
// italic, code), block formats (lists, quote, code block), @mention
// autocomplete against a host-supplied user directory, an emoji picker,
// link and image insertion, and a live character budget. The host owns the
// document value as an HTML fragment string: it passes the current value in
// through SetValue and receives accepted mutations back through
// Config.OnChange, exactly once per logical edit.
//
// IME composition is modeled with CompositionStartMsg, CompositionUpdateMsg,
// and CompositionEndMsg. While a composition is open the component suppresses
// value synchronization and mention scanning; both run exactly once when the
// composition ends.
package composer
