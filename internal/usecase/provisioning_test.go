package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProvisioning_ExecutesStepsInOrder(t *testing.T) {
	var order []string

	steps := []provisionStep{
		{
			name: "first",
			run: func(ctx context.Context) error {
				order = append(order, "first")
				return nil
			},
		},
		{
			name: "second",
			run: func(ctx context.Context) error {
				order = append(order, "second")
				return nil
			},
		},
	}

	err := runProvisioning(context.Background(), steps)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRunProvisioning_CompensatesInReverseOrder(t *testing.T) {
	var undone []string
	stepErr := errors.New("third step failed")

	steps := []provisionStep{
		{
			name: "first",
			run:  func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error {
				undone = append(undone, "first")
				return nil
			},
		},
		{
			name: "second",
			run:  func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error {
				undone = append(undone, "second")
				return nil
			},
		},
		{
			name: "third",
			run:  func(ctx context.Context) error { return stepErr },
		},
	}

	err := runProvisioning(context.Background(), steps)

	assert.ErrorIs(t, err, stepErr)
	assert.Equal(t, []string{"second", "first"}, undone)
}

func TestRunProvisioning_FirstStepFailure_NothingToCompensate(t *testing.T) {
	stepErr := errors.New("insert failed")
	compensated := false

	steps := []provisionStep{
		{
			name: "first",
			run:  func(ctx context.Context) error { return stepErr },
			compensate: func(ctx context.Context) error {
				compensated = true
				return nil
			},
		},
	}

	err := runProvisioning(context.Background(), steps)

	assert.ErrorIs(t, err, stepErr)
	assert.False(t, compensated, "a failed step must not compensate itself")
}

func TestRunProvisioning_SkipsNilCompensations(t *testing.T) {
	var undone []string
	stepErr := errors.New("last step failed")

	steps := []provisionStep{
		{
			name: "first",
			run:  func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error {
				undone = append(undone, "first")
				return nil
			},
		},
		{
			name: "second",
			run:  func(ctx context.Context) error { return nil },
		},
		{
			name: "third",
			run:  func(ctx context.Context) error { return stepErr },
		},
	}

	err := runProvisioning(context.Background(), steps)

	assert.ErrorIs(t, err, stepErr)
	assert.Equal(t, []string{"first"}, undone)
}

func TestRunProvisioning_CompensationFailure_WrapsInconsistentState(t *testing.T) {
	stepErr := errors.New("profile insert failed")
	undoErr := errors.New("account delete failed")

	steps := []provisionStep{
		{
			name:       "insert account",
			run:        func(ctx context.Context) error { return nil },
			compensate: func(ctx context.Context) error { return undoErr },
		},
		{
			name: "insert profile",
			run:  func(ctx context.Context) error { return stepErr },
		},
	}

	err := runProvisioning(context.Background(), steps)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentState)
	assert.Contains(t, err.Error(), "insert profile")
	assert.Contains(t, err.Error(), "insert account")
	assert.Contains(t, err.Error(), undoErr.Error())
}
