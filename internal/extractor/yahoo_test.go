package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yahooBase = "https://shopping.yahoo.co.jp"

const yahooHydrationPage = `<html><body>
<script id="__NEXT_DATA__" type="application/json">
{"props":{"pageProps":{"initialState":{"bff":{"advancedFilter":{"sections":{"category":{"categories":{
  "suggestedCategories":[
    {"text":"DVD","url":"/category/2517/881/list?sc_i=shp_pc","count":100},
    {"text":"Blu-ray","url":"https://shopping.yahoo.co.jp/category/2517/883","count":50}
  ],
  "toggleAreaCategoryItems":[
    {"text":"VHS","url":"/category/2517/884/list"},
    {"text":"DVDの別リンク","url":"/category/2517/881/list"}
  ]
}}}}}}}}}
</script>
</body></html>`

func TestYahooExtract(t *testing.T) {
	t.Parallel()

	ext := NewYahoo(yahooBase)

	entries, err := ext.Extract(yahooHydrationPage, yahooBase+"/category/2517/list")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Query params stripped, /list suffix enforced, ids canonical.
	assert.Equal(t, Entry{
		Name: "DVD",
		ID:   "881",
		URL:  yahooBase + "/category/2517/881/list",
	}, entries[0])
	assert.Equal(t, Entry{
		Name: "Blu-ray",
		ID:   "883",
		URL:  yahooBase + "/category/2517/883/list",
	}, entries[1])
	assert.Equal(t, "884", entries[2].ID)
}

func TestYahooExtractEmptySection(t *testing.T) {
	t.Parallel()

	page := `<html><body>
	<script id="__NEXT_DATA__" type="application/json">
	{"props":{"pageProps":{"initialState":{"bff":{"advancedFilter":{"sections":{"category":{"categories":{}}}}}}}}}
	</script>
	</body></html>`

	ext := NewYahoo(yahooBase)
	entries, err := ext.Extract(page, yahooBase+"/category/2517/list")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestYahooExtractMissingBlock(t *testing.T) {
	t.Parallel()

	ext := NewYahoo(yahooBase)
	_, err := ext.Extract("<html><body><p>no hydration data</p></body></html>",
		yahooBase+"/category/2517/list")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ReasonMissingJSONBlock, parseErr.Reason)
}

func TestYahooExtractMalformedJSON(t *testing.T) {
	t.Parallel()

	page := `<html><body><script id="__NEXT_DATA__">{not json</script></body></html>`

	ext := NewYahoo(yahooBase)
	_, err := ext.Extract(page, yahooBase+"/category/2517/list")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ReasonMalformedJSON, parseErr.Reason)
}

func TestYahooExtractMissingKeyPath(t *testing.T) {
	t.Parallel()

	page := `<html><body><script id="__NEXT_DATA__">{"props":{"pageProps":{}}}</script></body></html>`

	ext := NewYahoo(yahooBase)
	_, err := ext.Extract(page, yahooBase+"/category/2517/list")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ReasonMalformedJSON, parseErr.Reason)
}

func TestYahooCategoryID(t *testing.T) {
	t.Parallel()

	ext := NewYahoo(yahooBase)
	assert.Equal(t, "883", ext.CategoryID("/category/2517/881/883/list"))
	assert.Equal(t, "881", ext.CategoryID("https://shopping.yahoo.co.jp/category/881/list"))
	assert.Equal(t, "", ext.CategoryID("https://shopping.yahoo.co.jp/search?p=dvd"))
}

func TestYahooRootName(t *testing.T) {
	t.Parallel()

	ext := NewYahoo(yahooBase)
	assert.Equal(t, "DVD、", ext.RootName("<html><body><h1>DVD、映像ソフト</h1></body></html>"))
	assert.Equal(t, "ゲーム", ext.RootName("<html><body><h1>ゲームおすすめ特集</h1></body></html>"))
}
