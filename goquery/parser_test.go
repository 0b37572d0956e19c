package goquery_test

import (
	"testing"

	"github.com/fwojciec/linkex"
	lgoquery "github.com/fwojciec/linkex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements linkex.Parser at compile time.
var _ linkex.Parser = (*lgoquery.Parser)(nil)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("exposes attributes and text of selected nodes", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div id="manga-info-rightColumn"><h1>  Test <em>Manga</em>
</h1></div>
<div id="chapters-list">
	<a href="/m/1" class="ch">Chapter 1</a>
	<a src="/m/2">Chapter 2</a>
</div>
</body>
</html>`

		doc, err := lgoquery.NewParser().Parse(html)
		require.NoError(t, err)

		links := doc.Select(linkex.PatternChapterLinks)
		require.Len(t, links, 2)
		assert.Equal(t, "/m/1", links[0].Attr("href"))
		assert.Equal(t, "ch", links[0].Attr("class"))
		assert.Equal(t, "", links[1].Attr("href"))
		assert.Equal(t, "/m/2", links[1].Attr("src"))
		assert.Equal(t, "Chapter 2", links[1].Text())

		titles := doc.Select(linkex.PatternTitleHeading)
		require.Len(t, titles, 1)
		assert.Equal(t, "  Test Manga\n", titles[0].Text())
	})

	t.Run("parses empty input into an empty document", func(t *testing.T) {
		t.Parallel()

		doc, err := lgoquery.NewParser().Parse("")
		require.NoError(t, err)

		assert.Empty(t, doc.Select(linkex.PatternChapterLinks))
		assert.Empty(t, doc.Select(linkex.PatternTitleHeading))
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		doc, err := lgoquery.NewParser().Parse(`<div id="chapters-list"><a href="/m/1">1<a href="/m/2">2</div`)
		require.NoError(t, err)

		assert.Len(t, doc.Select(linkex.PatternChapterLinks), 2)
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		_, err := lgoquery.NewParser().Parse("<html>\xff\xfe</html>")

		require.Error(t, err)
		assert.Equal(t, linkex.EPARSE, linkex.ErrorCode(err))
	})
}
