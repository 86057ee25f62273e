package battleship

import "errors"

// Expected rejections. These are part of normal control flow: a driver shows
// them to the user and carries on.
var (
	ErrUnknownShip       = errors.New("battleship: unknown ship type")
	ErrShipAlreadyPlaced = errors.New("battleship: ship already placed")
	ErrOutOfBounds       = errors.New("battleship: placement out of bounds")
	ErrOverlap           = errors.New("battleship: placement overlaps another ship")
	ErrNilShip           = errors.New("battleship: nil ship")
)

// Caller-contract violations. Seeing one of these means the driver has a bug.
var (
	ErrBoardExhausted  = errors.New("battleship: every cell already attacked")
	ErrGameOver        = errors.New("battleship: game has ended")
	ErrForeignPlayer   = errors.New("battleship: player does not belong to this game")
	ErrSetupIncomplete = errors.New("battleship: ships still awaiting placement")
	ErrTargetRequired  = errors.New("battleship: human turn needs a target")
	ErrNotComputer     = errors.New("battleship: player is not computer-controlled")
	ErrPlacementFailed = errors.New("battleship: could not find room for ship")
	ErrBattleStarted   = errors.New("battleship: fleets are fixed once attacks have been made")
)

// IsContractViolation reports whether err signals driver misuse rather than
// an ordinary rejection.
func IsContractViolation(err error) bool {
	for _, target := range []error{
		ErrBoardExhausted,
		ErrGameOver,
		ErrForeignPlayer,
		ErrSetupIncomplete,
		ErrTargetRequired,
		ErrNotComputer,
		ErrBattleStarted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
