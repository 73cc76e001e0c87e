// Package peachtests declares which endpoints of each PeachCloud microservice are probed,
// and how.
//
// Each service has a fixed, ordered list of endpoints. Most are plain endpoints that must
// answer successfully. Endpoints that would change the device's state if they succeeded, such
// as connecting to a network, are instead called with a network that does not exist and are
// healthy only if they refuse it with the expected peach-network error code.
//
// The probing engine itself is in the framework package, and the JSON-RPC clients are in the
// client package.
package peachtests
