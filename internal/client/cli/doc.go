// Package cli provides hikectl, the HikeKeeper command-line client.
//
// It wires configuration, local storage and API services into cobra
// commands:
//   - register / login / logout / ping
//   - profile show / profile save
//   - hikes record / hikes sync / hikes list
//
// Hikes are recorded into a local SQLite outbox first and pushed by
// "hikes sync", so recording works offline. Every command accepts
// --format text|json.
package cli
