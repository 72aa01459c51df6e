package services

import (
	"errors"

	"github.com/terraincognita07/cyclewise/internal/models"
)

var (
	ErrCycleLengthOutOfRange    = errors.New("cycle length out of range")
	ErrPeriodLengthOutOfRange   = errors.New("period length out of range")
	ErrPeriodLengthIncompatible = errors.New("period length must be shorter than cycle length")
)

type CycleProfileInput struct {
	LastPeriodDate string
	CycleLength    int
	PeriodLength   int
}

// ValidateCycleProfile is the single acceptance gate for profiles. The phase
// maths downstream trusts its input and does not re-check these bounds.
func ValidateCycleProfile(input CycleProfileInput) (models.CycleProfile, error) {
	lastPeriodDate, err := ParseDay(input.LastPeriodDate)
	if err != nil {
		return models.CycleProfile{}, err
	}
	if !IsValidCycleLength(input.CycleLength) {
		return models.CycleProfile{}, ErrCycleLengthOutOfRange
	}
	if !IsValidPeriodLength(input.PeriodLength) {
		return models.CycleProfile{}, ErrPeriodLengthOutOfRange
	}
	// Unreachable with the current ranges; holds if they are widened.
	if input.PeriodLength >= input.CycleLength {
		return models.CycleProfile{}, ErrPeriodLengthIncompatible
	}

	return models.CycleProfile{
		ID:             models.CycleProfileID,
		LastPeriodDate: lastPeriodDate,
		CycleLength:    input.CycleLength,
		PeriodLength:   input.PeriodLength,
	}, nil
}

func IsValidCycleLength(value int) bool {
	return value >= models.MinCycleLength && value <= models.MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= models.MinPeriodLength && value <= models.MaxPeriodLength
}

// HasEmptyFollicularBand reports profiles whose period outlasts the
// follicular boundary, leaving no day classified as follicular.
func HasEmptyFollicularBand(profile models.CycleProfile) bool {
	return profile.PeriodLength >= follicularBoundary(profile.CycleLength)
}
