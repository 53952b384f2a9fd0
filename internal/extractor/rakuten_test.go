package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rakutenBase = "https://www.rakuten.co.jp"

const rakutenGenrePage = `<html><body>
<div class="dui-filter-menu">
  <span class="item-active">DVD</span>
  <div class="item">
    <div class="dui-list">
      <a href="/category/200001/" title="アクション（1,234件）">アクション（1,234件）</a>
      <a href="/category/200002/"><div class="_ellipsis">コメディ 567件</div></a>
      <a href="/category/101354/">DVD</a>
      <a href="/category/200001/">アクション</a>
    </div>
  </div>
</div>
</body></html>`

func TestRakutenExtract(t *testing.T) {
	t.Parallel()

	ext := NewRakuten(rakutenBase)

	entries, err := ext.Extract(rakutenGenrePage, rakutenBase+"/category/101354/")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Entry{
		Name: "アクション",
		ID:   "200001",
		URL:  rakutenBase + "/category/200001/",
	}, entries[0])

	// Name comes from the ellipsis div with the bare count stripped.
	assert.Equal(t, "コメディ", entries[1].Name)
	assert.Equal(t, "200002", entries[1].ID)
}

func TestRakutenExtractLeaf(t *testing.T) {
	t.Parallel()

	// Active genre with no sibling child block is a leaf, not a failure.
	page := `<html><body>
	<div class="dui-filter-menu">
	  <span class="item-active">DVD</span>
	</div>
	</body></html>`

	ext := NewRakuten(rakutenBase)
	entries, err := ext.Extract(page, rakutenBase+"/category/101354/")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRakutenExtractMissingContainer(t *testing.T) {
	t.Parallel()

	ext := NewRakuten(rakutenBase)
	_, err := ext.Extract("<html><body><p>not a category page</p></body></html>",
		rakutenBase+"/category/101354/")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ReasonMissingContainer, parseErr.Reason)
	assert.Equal(t, rakutenBase+"/category/101354/", parseErr.URL)
}

func TestRakutenExtractMissingActiveElement(t *testing.T) {
	t.Parallel()

	page := `<html><body><div class="dui-filter-menu"><div class="item"></div></div></body></html>`

	ext := NewRakuten(rakutenBase)
	_, err := ext.Extract(page, rakutenBase+"/category/101354/")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ReasonMissingContainer, parseErr.Reason)
}

func TestRakutenCategoryID(t *testing.T) {
	t.Parallel()

	ext := NewRakuten(rakutenBase)
	assert.Equal(t, "101354", ext.CategoryID("https://www.rakuten.co.jp/category/101354/"))
	assert.Equal(t, "200001", ext.CategoryID("/category/200001/"))
	assert.Equal(t, "", ext.CategoryID("https://www.rakuten.co.jp/event/summer/"))
}

func TestRakutenRootName(t *testing.T) {
	t.Parallel()

	page := `<html><body>
	<div class="dui-container breadcrumb">
	  <a class="item" href="/">トップ</a>
	  <a class="item" href="/category/101354/">DVD</a>
	</div>
	</body></html>`

	ext := NewRakuten(rakutenBase)
	assert.Equal(t, "DVD", ext.RootName(page))

	assert.Equal(t, "ゲーム", ext.RootName("<html><body><h1>ゲーム</h1></body></html>"))
	assert.Equal(t, "", ext.RootName("<html><body></body></html>"))
}
