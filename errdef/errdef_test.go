package errdef

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	errCheck   = New("privilege check failed")
	errRequest = New("elevation request failed")
	errLaunch  = New("launch rejected")
)

func TestErrorStringer(t *testing.T) {
	type testCase struct {
		name     string
		err      error
		expected string
	}

	for _, scenario := range []testCase{
		{
			name:     "non-wrapped error",
			err:      errCheck,
			expected: "privilege check failed",
		},
		{
			name:     "error wrapped in error",
			err:      errCheck.Wrap(errRequest),
			expected: "privilege check failed: elevation request failed",
		},
		{
			name:     "string wrapped error",
			err:      errCheck.Wrapf("test"),
			expected: "privilege check failed: test",
		},
		{
			name:     "double wrapped string error",
			err:      errCheck.Wrapf("test: %w", errRequest),
			expected: "privilege check failed: test: elevation request failed",
		},
	} {
		t.Run(scenario.name, func(t *testing.T) {
			require.Error(t, scenario.err)
			require.Equal(t, scenario.expected, scenario.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	err := errCheck.Wrap(errRequest)
	require.Equal(t, errRequest, errors.Unwrap(err))
}

func TestErrorsIs(t *testing.T) {
	err := errCheck.Wrap(errRequest.Wrap(errLaunch))
	require.True(t, errors.Is(err, errCheck))
	require.True(t, errors.Is(err, errRequest))
	require.True(t, errors.Is(err, errLaunch))
	require.False(t, errors.Is(err, New("something else")))
}
