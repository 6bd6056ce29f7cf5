package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ToHTMLStripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTML("# Summer Fest\n\nBring **water**.<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>water</strong>")
	assert.Contains(t, out, `<h1 id="summer-fest">`)
	assert.NotContains(t, out, "<script>")
}

func TestRenderer_Summary(t *testing.T) {
	r := NewRenderer()

	out, err := r.Summary("## Lineup\n\n* DJ One\n* DJ Two", 0)
	require.NoError(t, err)
	assert.Equal(t, "Lineup DJ One DJ Two", out)

	out, err = r.Summary("An evening of jazz & blues by the river", 10)
	require.NoError(t, err)
	assert.Equal(t, "An evenin…", out)
}
