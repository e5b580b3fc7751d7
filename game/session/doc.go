// Package session manages the in-memory registry of running games.
//
// Each session pairs a short generated ID with a game engine, its rule set
// and roster. The manager tracks last access times so idle tables can be
// cleaned up. Sessions are process-local; there is no on-disk state.
package session
