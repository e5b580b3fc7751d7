// Package service provides the game service facade used by every front end.
//
// GameService bundles session lifecycle, one method per engine command and
// configuration access behind a single interface, so the console and MCP
// transports share identical behavior. Commands run under a service lock;
// the engine itself is not safe for concurrent use.
package service
