// Package swm implements floating sub-windows inside a single rendered
// surface: a z-ordered window stack, window chrome with drag and close
// affordances, and bidirectional shared-data bridging between the main
// tree and each window's subtree.
//
// Cross-tree references are forbidden by the widget layer, so every
// relationship here is expressed as opaque node ids plus commands on the
// bus. The manager is the only component that resolves a window id to an
// actual stack entry; proxies and dialogs store ids and nothing else.
package swm
