package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("**Disk full** on `db-01`\n\n<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>Disk full</strong>")
	assert.Contains(t, out, "<code>db-01</code>")
	assert.NotContains(t, out, "<script>")
}

func TestToHTML_GFMTable(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTML("| host | state |\n|---|---|\n| web-1 | down |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>web-1</td>")
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	svc := NewMarkdownService()
	out := svc.Sanitize(`<a href="https://status.example.com" onclick="steal()">status</a>`)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "status.example.com")
}
