// Package console is the interactive hot-seat terminal front end.
//
// It loads a player roster from a text file, renders the board and market as
// ASCII, translates line input into game commands, and loops games until the
// players decline a rematch. The package contains no rules logic: every
// command goes through the game service and every displayed value comes from
// the engine snapshot.
package console
