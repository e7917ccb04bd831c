// Package view implements the Tendril reactive component model.
//
// Components are stateful units instantiated when a markup tag matches a
// registry entry. Each concrete component embeds *Base, which owns the
// instance's state cells, event accessors, ancestry back-reference, and
// bound update handler. State mutation goes through setters that schedule a
// full re-render cascade from the originating component to the root.
//
// Scheduling is single-threaded and cooperative: setters enqueue tasks on a
// Scheduler; a driver (the host loop, a test, or the CLI) drains the queue
// after the current synchronous unit of work completes. Cascades are never
// coalesced: N setter calls schedule N independent cascades.
//
// DOM materialization and durable storage are consumed through the DOM and
// Storage interfaces; the htmldom package provides a concrete DOM backend.
package view
