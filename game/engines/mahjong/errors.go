package mahjong

import "errors"

// 构造错误
var (
	ErrInvalidTile           = errors.New("invalid tile")
	ErrInvalidSeatPosition   = errors.New("invalid seat position")
	ErrInvalidMeld           = errors.New("invalid meld")
	ErrInvalidMeldTransition = errors.New("invalid meld transition")
	ErrInvalidNotation       = errors.New("invalid tile notation")
)

// 前置条件错误
var (
	ErrMalformedHand = errors.New("malformed hand")
)
