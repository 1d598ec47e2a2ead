package domain_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"seprim/internal/domain"
)

func TestErrorFormattingAndUnwrap(t *testing.T) {
	err := domain.Wrap(domain.KindConfiguration, "entropy.System", "read system randomness", io.ErrUnexpectedEOF)
	require.Equal(t, "entropy.System: read system randomness", err.Error())
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var de *domain.Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &de))
	require.Equal(t, domain.KindConfiguration, de.Kind)
}

func TestKindHelpers(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", domain.Errorf(domain.KindOverlap, "memory.XorAssign", "regions partially overlap"))
	require.True(t, domain.IsKind(err, domain.KindOverlap))
	require.False(t, domain.IsKind(err, domain.KindPrecondition))
	require.Equal(t, domain.KindOverlap, domain.KindOf(err))
	require.Equal(t, domain.Kind(""), domain.KindOf(io.EOF))
	require.False(t, domain.IsKind(nil, domain.KindOverlap))
}

func TestStatusWord(t *testing.T) {
	cases := []struct {
		err  error
		want uint16
	}{
		{nil, domain.StatusOK},
		{domain.Errorf(domain.KindInvalidLength, "op", "x"), domain.StatusWrongLength},
		{domain.Errorf(domain.KindPrecondition, "op", "x"), domain.StatusWrongData},
		{domain.Errorf(domain.KindOverlap, "op", "x"), domain.StatusWrongData},
		{domain.Errorf(domain.KindConfiguration, "op", "x"), domain.StatusWrongParameters},
		{io.EOF, domain.StatusWrongData},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, domain.StatusWord(tc.err), "%v", tc.err)
	}
}
