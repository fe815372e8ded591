package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

// SetTestingT sets the test used by WithoutErr and WithErr.
func SetTestingT(t *testing.T) {
	testT = t
}

// WithoutErr fails the current test if err is not nil, and returns v otherwise.
func WithoutErr[T any](v T, err error) T {
	require.NoError(testT, err)
	return v
}

// WithErr fails the current test if err is nil, and returns err otherwise.
func WithErr[T any](_ T, err error) error {
	require.Error(testT, err)
	return err
}
