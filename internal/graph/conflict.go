package graph

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

const (
	PolicyOverwrite = "overwrite"
	PolicySum       = "sum"
	PolicyMean      = "mean"
	PolicyMax       = "max"
	PolicyMin       = "min"
)

// Reducer folds edge weights into one. It is always called with at least one value.
type Reducer func(values ...float64) float64

func Sum(values ...float64) float64 {
	return floats.Sum(values)
}

func Mean(values ...float64) float64 {
	return stat.Mean(values, nil)
}

func Max(values ...float64) float64 {
	return floats.Max(values)
}

func Min(values ...float64) float64 {
	return floats.Min(values)
}

// ConflictPolicy decides the weight of an edge that already exists.
// Build one with Overwrite or Aggregate; the zero value is invalid.
type ConflictPolicy struct {
	overwrite bool
	reduce    Reducer
}

// Overwrite - the new weight replaces the old one.
func Overwrite() ConflictPolicy {
	return ConflictPolicy{overwrite: true}
}

// Aggregate - the stored weight becomes reduce(old, new).
func Aggregate(reduce Reducer) ConflictPolicy {
	return ConflictPolicy{reduce: reduce}
}

// DefaultConnectionPolicy - averages a repeated connection's weights.
func DefaultConnectionPolicy() ConflictPolicy {
	return Aggregate(Mean)
}

// DefaultMergePolicy - adds up the weights of edges both graphs know.
func DefaultMergePolicy() ConflictPolicy {
	return Aggregate(Sum)
}

// ParseConflictPolicy - maps a config name to a policy.
func ParseConflictPolicy(name string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyOverwrite:
		return Overwrite(), nil
	case PolicySum:
		return Aggregate(Sum), nil
	case PolicyMean:
		return Aggregate(Mean), nil
	case PolicyMax:
		return Aggregate(Max), nil
	case PolicyMin:
		return Aggregate(Min), nil
	default:
		return ConflictPolicy{}, fmt.Errorf("%w: %q", apperror.ErrConflictPolicy, name)
	}
}

func (that ConflictPolicy) validate() error {
	if that.overwrite || that.reduce != nil {
		return nil
	}

	return apperror.ErrConflictPolicy
}

func (that ConflictPolicy) resolve(old, weight float64) float64 {
	if that.overwrite {
		return weight
	}

	return that.reduce(old, weight)
}
