// Package widget implements the retained widget tree that the sub-window
// compositor is built on: node identity, box-constraint layout, cell-canvas
// painting, and a command/notification bus with targeted and bubbled
// delivery. Dispatch is single-threaded; every handler runs to completion
// before the next event is processed.
package widget
