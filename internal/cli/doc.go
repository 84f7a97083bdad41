// Package cli provides the interactive learnhub console client.
//
// It wires configuration, the document stores, and the auth session into a
// menu-driven terminal UI. Typical flow: the anonymous menu offers
// registration, login, and password recovery; after login the user (or
// admin) menu offers courses, statistics views and, for elevated admin
// sessions, the global listings.
//
// The UI is started via App.Run(ctx), which blocks until the operator exits.
// All rendering is centered on the real terminal size with an 80×24
// fallback. The core packages never read input or format output; everything
// interactive lives here.
package cli
