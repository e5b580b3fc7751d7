package engine

import "errors"

// Sentinel errors returned by engine commands. Callers match them with
// errors.Is; the wrapped message carries the specifics.
var (
	// ErrConfiguration is returned when a game cannot be created from the
	// given configuration or player roster.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidPhaseCommand is returned when a command arrives outside the
	// phase it belongs to.
	ErrInvalidPhaseCommand = errors.New("command not valid in current phase")

	// ErrInvalidPlacement is returned for tiles not in hand, tiles that would
	// merge two safe chains, and new-chain tiles with no hotel left to found.
	ErrInvalidPlacement = errors.New("invalid tile placement")

	// ErrInvalidFounding is returned when the chosen chain is already on the
	// board or does not exist.
	ErrInvalidFounding = errors.New("invalid hotel founding")

	// ErrInvalidMergerChoice is returned when a tie-break pick names a chain
	// that is not among the tied candidates.
	ErrInvalidMergerChoice = errors.New("invalid merger order choice")

	// ErrInvalidDisposal is returned for disposal actions that violate the
	// trade/sell constraints or name the wrong chain.
	ErrInvalidDisposal = errors.New("invalid stock disposal")

	// ErrInvalidPurchase is returned when a purchase request exceeds the per
	// turn limit, the bank pool, or the player's cash.
	ErrInvalidPurchase = errors.New("invalid stock purchase")
)
