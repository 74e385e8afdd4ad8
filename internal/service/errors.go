package service

import "errors"

var (
	ErrInvalidName       = errors.New("name must not be empty")
	ErrInvalidWeek       = errors.New("week is outside of the season")
	ErrInvalidSeason     = errors.New("a season needs a name and at least one week")
	ErrInvalidDates      = errors.New("season end date is before its start date")
	ErrNoActiveSeason    = errors.New("no season is active")
	ErrDuplicateGame     = errors.New("a game with this name already exists")
	ErrUnknownPlayer     = errors.New("player does not exist")
	ErrSamePlayer        = errors.New("a player cannot be matched against themselves")
	ErrNotParticipant    = errors.New("player is not part of this match")
	ErrMatchResolved     = errors.New("match already has a result")
	ErrMatchNotResolved  = errors.New("match has no result to reopen")
	ErrByeMatch          = errors.New("bye matches cannot be won or forfeited")
	ErrInvalidResult     = errors.New("result must be one of win, dq or skip")
	ErrNegativeStatistic = errors.New("player statistics cannot be negative")
)
