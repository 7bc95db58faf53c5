// Package cli provides the interactive CraftConnect command-line client.
//
// It plays the part of the views: it subscribes to the session manager,
// prints login and registration errors inline, and tells the user to sign
// in again when the backend rejects the session token.
//
// Key features:
//   - Register / Login / Logout / WhoAmI
//   - Browse, search, like and delete products
//   - AI copilot: image analysis, story generation, price suggestions
//   - Profile editing and the seller dashboard
//
// The REPL is started via App.Run(ctx), which restores the persisted session
// and blocks until the user exits. See App and runREPL for details.
package cli
