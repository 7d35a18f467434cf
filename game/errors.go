package game

import (
	"errors"
	"fmt"
)

// Construction failures. A registry that fails to build is never used.
var (
	ErrInvalidSize       = errors.New("invalid map: number of territories out of range")
	ErrEntryCount        = errors.New("invalid map: one entry is needed per territory")
	ErrTooFewTerritories = errors.New("invalid map: not enough territories")
	ErrInvalidName       = errors.New("invalid territory: name must have 1 to 50 characters")
	ErrInvalidFaction    = errors.New("invalid territory: faction must have 1 to 10 characters")
	ErrInvalidTroops     = errors.New("invalid territory: troops cannot be negative")
	ErrEmptyCatalog      = errors.New("invalid mission catalog: no missions to assign")
)

// Attack rejections, checked in this order.
var (
	ErrOutOfRange         = errors.New("cannot attack: territory does not exist")
	ErrSelfAttack         = errors.New("cannot attack: a territory cannot attack itself")
	ErrNotPlayerTerritory = errors.New("cannot attack: attacker is not your territory")
	ErrInsufficientTroops = errors.New("cannot attack: attacker needs at least 2 troops")
	ErrSameFaction        = errors.New("cannot attack: target belongs to the same faction")
)

// Reason tags why an attack was rejected.
type Reason int

const (
	OutOfRange Reason = iota + 1
	SelfAttack
	NotPlayerTerritory
	InsufficientTroops
	SameFaction
)

func (r Reason) String() string {
	switch r {
	case OutOfRange:
		return "out of range"
	case SelfAttack:
		return "self-attack"
	case NotPlayerTerritory:
		return "not your territory"
	case InsufficientTroops:
		return "insufficient troops"
	case SameFaction:
		return "same faction"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

func (r Reason) err() error {
	switch r {
	case OutOfRange:
		return ErrOutOfRange
	case SelfAttack:
		return ErrSelfAttack
	case NotPlayerTerritory:
		return ErrNotPlayerTerritory
	case InsufficientTroops:
		return ErrInsufficientTroops
	case SameFaction:
		return ErrSameFaction
	default:
		return errors.New("cannot attack")
	}
}

// Rejection is returned when an attack fails validation. The registry is left
// untouched. It unwraps to the sentinel matching its Reason.
type Rejection struct {
	Reason   Reason
	Attacker int
	Defender int
}

func (e *Rejection) Error() string {
	return fmt.Sprintf("%v (attacker %d, defender %d)", e.Reason.err(), e.Attacker, e.Defender)
}

func (e *Rejection) Unwrap() error {
	return e.Reason.err()
}

func reject(reason Reason, attacker, defender int) error {
	return &Rejection{Reason: reason, Attacker: attacker, Defender: defender}
}
