package s11n_test

import (
	"bytes"
	"testing"

	"github.com/lestrrat-go/vel/s11n"
	"github.com/stretchr/testify/require"
)

func TestEscapeText(t *testing.T) {
	testcases := []struct {
		Input  string
		Expect string
	}{
		{Input: `plain`, Expect: `plain`},
		{Input: `a < b && c > d`, Expect: `a &lt; b &amp;&amp; c &gt; d`},
		{Input: "line\nbreak\r", Expect: "line\nbreak&#13;"},
		{Input: `"quoted"`, Expect: `"quoted"`},
		{Input: "日本語", Expect: "日本語"},
		{Input: "bad\xffbyte", Expect: "bad�byte"},
	}

	for _, tc := range testcases {
		t.Run(tc.Input, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, s11n.EscapeText(&buf, []byte(tc.Input)))
			require.Equal(t, tc.Expect, buf.String())
		})
	}
}

func TestEscapeAttrValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, s11n.EscapeAttrValue(&buf, []byte("say \"hi\"\t<now>\n")))
	require.Equal(t, "say &#34;hi&#34;&#9;&lt;now&gt;&#10;", buf.String())
}
