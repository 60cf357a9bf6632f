// Package stromboli provides the navigation layer for component-based UI
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware like NextUI or Cannoli.
//
// The package owns a navigation state tree and applies actions to it through
// a pluggable Router. A Container wraps a routed component and turns it into
// a stateful top-level navigator: it dispatches actions, resolves deep-link
// URLs into actions, wires hardware back-button and URL-opened events, and
// notifies observers of state transitions. Concurrent parameter updates are
// reconciled with a route-merge algorithm so that updates aimed at different
// route keys never clobber each other.
//
// Rendering, theming, and input delivery beyond the back/link event sources
// are out of scope; those belong to the host UI framework.
package stromboli
