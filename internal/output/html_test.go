package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdash/nerdash/internal/payload"
	"github.com/nerdash/nerdash/internal/record"
)

func fixedRenderer(title string) *HTMLRenderer {
	h := NewHTMLRenderer(title)
	h.nowFunc = func() time.Time { return time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC) }
	h.idFunc = func() string { return "00000000-0000-4000-8000-000000000000" }
	return h
}

func TestNewHTMLRenderer_DefaultTitle(t *testing.T) {
	assert.Equal(t, DefaultTitle, NewHTMLRenderer("").Title)
	assert.Equal(t, "Run 7", NewHTMLRenderer("Run 7").Title)
}

func TestHTMLRenderer_Shell(t *testing.T) {
	shell, err := fixedRenderer("").Shell(4)
	require.NoError(t, err)

	out := string(shell)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, payload.Placeholder)
	assert.Contains(t, out, `<span id="record-count">4</span> records`)
	assert.Contains(t, out, "generated 2026-02-12 10:00 UTC")
	assert.Contains(t, out, `content="00000000-0000-4000-8000-000000000000"`)
	assert.NotContains(t, out, "[[", "template delimiters must not leak into the page")

	r, err := payload.Locate(shell)
	require.NoError(t, err)
	assert.False(t, r.Legacy)
	assert.Equal(t, r.Start, r.End, "shell payload is empty")
}

func TestHTMLRenderer_TitleEscaped(t *testing.T) {
	shell, err := fixedRenderer(`<b>"NER"</b>`).Shell(0)
	require.NoError(t, err)

	out := string(shell)
	assert.Contains(t, out, "<title>&lt;b&gt;&#34;NER&#34;&lt;/b&gt;</title>")
	assert.NotContains(t, out, `<b>"NER"</b>`)
}

func TestHTMLRenderer_RenderEmbedsRawInput(t *testing.T) {
	res := fixtureResult()

	var buf bytes.Buffer
	require.NoError(t, fixedRenderer("").Render(res, &buf))

	got, err := payload.Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, res.Raw, got)
	assert.Contains(t, buf.String(), `<span id="record-count">4</span>`)
}

func TestHTMLRenderer_MalformedLinesStayInPayload(t *testing.T) {
	raw := fixtureLines[0] + "\n{not json\n" + fixtureLines[3]
	res := record.Parse([]byte(raw))
	require.Len(t, res.Records, 2)
	require.Len(t, res.Warnings, 1)

	var buf bytes.Buffer
	require.NoError(t, fixedRenderer("").Render(res, &buf))

	got, err := payload.Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	assert.Contains(t, buf.String(), `<span id="record-count">2</span>`)
}

func TestHTMLRenderer_HostileInputCannotBreakOut(t *testing.T) {
	raw := `{"Test_Case":"x","Phrase":"` + "`${alert(1)}` </script><!--" + `"}`
	res := record.Parse([]byte(raw))

	var buf bytes.Buffer
	require.NoError(t, fixedRenderer("").Render(res, &buf))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "</script>"), "only the shell closes the script")
	got, err := payload.Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestHTMLRenderer_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedRenderer("").Render(record.Parse(nil), &buf))

	got, err := payload.Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "No records")
}

func TestHTMLRenderer_WriteError(t *testing.T) {
	err := fixedRenderer("").Render(fixtureResult(), failWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
