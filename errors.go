package main

import (
	"errors"
)

// Operation failures surfaced to clients as failed acks. The messages are
// user-facing, so they stay human-readable rather than machine-parseable.
var (
	errGameNotFound      = errors.New("Game not found")
	errNotAuthorized     = errors.New("Game not found or not authorized")
	errBadPassword       = errors.New("Invalid game password")
	errAlreadyJoined     = errors.New("Already joined this game")
	errRejoinCodeTaken   = errors.New("Rejoin code already in use")
	errInvalidRejoinCode = errors.New("Invalid rejoin code")
	errNoQuestions       = errors.New("At least one question is required")
	errEmptyAnswer       = errors.New("Please provide either a text answer or an image")
	errUnknownQuestion   = errors.New("Question not found")
	errUnknownAnswer     = errors.New("Answer not found")
	errBadReviewStatus   = errors.New("Review status must be correct or incorrect")
	errNotReviewed       = errors.New("Answer must be reviewed before scoring")
	errAlreadyScored     = errors.New("Answer has already been scored")
	errBadScore          = errors.New("Score must be between 1 and 5")
	errMissingJoinInfo   = errors.New("Player name and rejoin code are required")
)
