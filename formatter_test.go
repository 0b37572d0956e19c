package linkex_test

import (
	"testing"
	"time"

	"github.com/fwojciec/linkex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("formats header and numbered entries", func(t *testing.T) {
		t.Parallel()

		result := &linkex.ScrapeResult{
			SourceURL: "https://example.com/manga/test",
			Title:     "Test Manga",
			Links: []string{
				"https://example.com/m/1",
				"https://example.com/m/2",
			},
			ScrapedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local),
		}

		got, err := linkex.NewTextFormatter().Format(result)

		require.NoError(t, err)
		expected := "# Manga Chapter Links\n" +
			"# Title: Test Manga\n" +
			"# Source: https://example.com/manga/test\n" +
			"# Total Chapters: 2\n" +
			"# Generated: 2024-01-02 03:04:05\n" +
			"# ==========================================\n" +
			"\n" +
			"# Chapter 1\n" +
			"https://example.com/m/1\n" +
			"\n" +
			"# Chapter 2\n" +
			"https://example.com/m/2\n" +
			"\n"
		assert.Equal(t, expected, got)
	})

	t.Run("rejects result without links", func(t *testing.T) {
		t.Parallel()

		result := &linkex.ScrapeResult{
			SourceURL: "https://example.com/manga/test",
			Title:     "Test Manga",
		}

		_, err := linkex.NewTextFormatter().Format(result)

		require.Error(t, err)
		assert.Equal(t, linkex.EINVALID, linkex.ErrorCode(err))
	})
}

func TestTextFormatter_Extension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "txt", linkex.NewTextFormatter().Extension())
}
