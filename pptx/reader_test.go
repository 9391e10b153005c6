package pptx

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VantageDataChat/GoDeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var geometryOf = map[godeck.Kind]string{
	godeck.KindRectangle:        "rect",
	godeck.KindRoundedRectangle: "roundRect",
	godeck.KindArrow:            "rightArrow",
	godeck.KindTextBox:          "rect",
}

func TestReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	d := testDeck(t)
	doc := New(d.Canvas().Width, d.Canvas().Height)
	doc.GetDocumentProperties().Title = "Round trip"
	doc.GetDocumentProperties().Subject = "Reader"
	require.NoError(t, d.Save(doc, path))

	sum, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Round trip", sum.Title)
	assert.Equal(t, "Reader", sum.Subject)
	assert.Equal(t, "GoDeck", sum.Creator)
	assert.Equal(t, godeck.Widescreen.Width, sum.Width)
	assert.Equal(t, godeck.Widescreen.Height, sum.Height)

	slides := d.Slides()
	require.Len(t, sum.Slides, len(slides))
	for i, s := range slides {
		got := sum.Slides[i]
		assert.Equal(t, s.Name(), got.Name)

		prims := s.Primitives()
		require.Len(t, got.Shapes, len(prims), s.Name())
		for j, p := range prims {
			assert.Equal(t, geometryOf[p.Kind], got.Shapes[j].Geometry)
			assert.Equal(t, p.Kind == godeck.KindTextBox, got.Shapes[j].TextBox)
			if p.Text != nil {
				assert.Len(t, got.Shapes[j].Text, len(p.Text.Paragraphs))
			} else {
				assert.Empty(t, got.Shapes[j].Text)
			}
		}
	}
}

func TestReadRecoversText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestDocument(t).WriteTo(&buf))

	sum, err := ReadFrom(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, sum.Slides, 4)

	assert.Contains(t, sum.Slides[0].Texts(), "Control Plane")
	assert.Contains(t, sum.Slides[0].Texts(), "Testing")

	texts := sum.Slides[1].Texts()
	assert.Contains(t, texts, "make test\nmake lint")
	assert.Contains(t, texts, godeck.BulletGlyph+" one")
	assert.Contains(t, texts, godeck.BulletGlyph+" two")
}

func TestReadErrors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.pptx"))
	assert.Error(t, err)

	_, err = ReadFrom(bytes.NewReader(nil), 0)
	assert.ErrorContains(t, err, "invalid reader size")

	notZip := []byte("definitely not a zip archive")
	_, err = ReadFrom(bytes.NewReader(notZip), int64(len(notZip)))
	assert.ErrorContains(t, err, "failed to open zip")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("docProps/core.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<cp:coreProperties/>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ReadFrom(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.ErrorIs(t, err, errPartNotFound)
	assert.True(t, strings.Contains(err.Error(), "ppt/presentation.xml"))
}
