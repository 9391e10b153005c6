package preview

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// goFontCache maps the theme fonts onto the Go fonts so rendering exercises
// real glyph loading without depending on installed fonts.
func goFontCache(t *testing.T) *FontCache {
	t.Helper()
	fc := &FontCache{fonts: make(map[string]*opentype.Font), scanned: true}
	require.NoError(t, fc.LoadFontData("Calibri", goregular.TTF))
	require.NoError(t, fc.LoadFontData("Courier New", gomono.TTF))
	return fc
}

func TestFontCacheLookup(t *testing.T) {
	fc := goFontCache(t)

	assert.NotNil(t, fc.Font("calibri", false))
	assert.NotNil(t, fc.Font("Go", false), "registered under its family name too")
	assert.Nil(t, fc.Font("Missing Family", false))
	assert.Nil(t, fc.NewFace("Missing Family", 12, false))

	a := fc.NewFace("Calibri", 12, false)
	b := fc.NewFace("Calibri", 12, false)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotSame(t, a, b)
}

func TestLoadFontDataRejectsGarbage(t *testing.T) {
	fc := &FontCache{fonts: make(map[string]*opentype.Font), scanned: true}
	assert.Error(t, fc.LoadFontData("bad", []byte("not a font")))
}

func TestRendererKeepsItsOwnFaces(t *testing.T) {
	fc := goFontCache(t)
	r1 := &renderer{scaleX: 1e-4, scaleY: 1e-4, fontCache: fc}
	r2 := &renderer{scaleX: 1e-4, scaleY: 1e-4, fontCache: fc}

	f1 := r1.sizedFace("Calibri", 12, false)
	require.NotNil(t, f1)
	assert.Same(t, f1, r1.sizedFace("calibri", 12, false))
	assert.NotSame(t, f1, r2.sizedFace("Calibri", 12, false))
}

// Run with -race: documents sharing one cache render in parallel.
func TestSharedFontCacheConcurrentRender(t *testing.T) {
	fc := goFontCache(t)
	d := buildDeck(t)

	docs := make([]*Document, 2)
	for i := range docs {
		docs[i] = New(d.Canvas(), Options{Width: 320, FontCache: fc})
		d.Emit(docs[i])
	}

	var wg sync.WaitGroup
	errs := make([]error, len(docs))
	for i, doc := range docs {
		i, doc := i, doc
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := 0; s < doc.SlideCount(); s++ {
				if _, err := doc.SlideToImage(s); err != nil {
					errs[i] = err
					return
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
