package game

import "errors"

var (
	ErrBadCard          = errors.New("bad_card")
	ErrBadBoard         = errors.New("bad_board")
	ErrDuplicateCard    = errors.New("duplicate_card")
	ErrMissingHoleCards = errors.New("missing_hole_cards")
	ErrNoContenders     = errors.New("no_eligible_players")
	ErrNoSurvivor       = errors.New("no_surviving_player")
	ErrNotFoldEnded     = errors.New("multiple_players_without_showdown")
	ErrPotMismatch      = errors.New("pot_mismatch")
)
