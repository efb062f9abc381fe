package nsstack_test

import (
	"testing"

	"github.com/lestrrat-go/vel/internal/stack/nsstack"
	"github.com/stretchr/testify/require"
)

func TestNsStack(t *testing.T) {
	s := nsstack.New()
	s.Push("xlink", "http://www.w3.org/1999/xlink")
	s.Push("ds", "http://www.w3.org/2000/09/xmldsig#")
	require.Equal(t, 2, s.Len(), "Len == 2")

	require.Equal(t, "http://www.w3.org/2000/09/xmldsig#", s.Lookup("ds"), `Lookup("ds") succeeds`)
	require.Equal(t, "http://www.w3.org/1999/xlink", s.Lookup("xlink"), `Lookup("xlink") succeeds`)

	prefix, ok := s.LookupURI("http://www.w3.org/1999/xlink")
	require.True(t, ok)
	require.Equal(t, "xlink", prefix)

	s.Push("xlink", "urn:other")
	_, ok = s.LookupURI("http://www.w3.org/1999/xlink")
	require.False(t, ok, "rebound prefix hides the outer declaration")

	s.Pop(1)
	_, ok = s.LookupURI("http://www.w3.org/1999/xlink")
	require.True(t, ok)

	s.Pop(1)
	require.Equal(t, 1, s.Len(), "Len == 1")
	require.Equal(t, "", s.Lookup("ds"), `Lookup("ds") fails`)

	s.Pop(5)
	require.Equal(t, 0, s.Len())
}
