package godeck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDocument captures what a deck emits.
type recordingDocument struct {
	slides  []string
	shapes  map[string][]Primitive
	current string
	saved   []string
	err     error
}

func newRecordingDocument() *recordingDocument {
	return &recordingDocument{shapes: map[string][]Primitive{}}
}

func (d *recordingDocument) AddSlide(name string) {
	d.slides = append(d.slides, name)
	d.current = name
}

func (d *recordingDocument) Place(p Primitive) {
	d.shapes[d.current] = append(d.shapes[d.current], p)
}

func (d *recordingDocument) Save(path string) error {
	d.saved = append(d.saved, path)
	return d.err
}

func testDeck(t *testing.T) *Deck {
	t.Helper()
	b := newTestBuilder()
	d := NewDeck(b.Canvas())
	require.NoError(t, d.Append(
		b.Title(TitleSpec{Title: "Deck", Subtitle: "Sub"}),
		b.Content(ContentSpec{Title: "Points", Bullets: []string{"a", "b"}}),
	))
	require.NoError(t, d.Append(b.Pipeline(PipelineSpec{Title: "Flow", Stages: testStages()})))
	return d
}

func TestDeckAppendKeepsOrder(t *testing.T) {
	d := testDeck(t)

	require.Equal(t, 3, d.Len())
	var names []string
	for _, s := range d.Slides() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"Deck", "Points", "Flow"}, names)
	assert.Equal(t, Widescreen, d.Canvas())
	assert.False(t, d.Sealed())
}

func TestDeckSlidesIsACopy(t *testing.T) {
	d := testDeck(t)
	slides := d.Slides()
	slides[0] = Slide{name: "changed"}
	assert.Equal(t, "Deck", d.Slides()[0].Name())
}

func TestDeckEmit(t *testing.T) {
	d := testDeck(t)
	doc := newRecordingDocument()

	d.Emit(doc)

	assert.Equal(t, []string{"Deck", "Points", "Flow"}, doc.slides)
	for _, s := range d.Slides() {
		assert.Equal(t, s.Primitives(), doc.shapes[s.Name()])
	}
	assert.Empty(t, doc.saved)
	assert.False(t, d.Sealed())
}

func TestDeckSaveSeals(t *testing.T) {
	d := testDeck(t)
	doc := newRecordingDocument()

	require.NoError(t, d.Save(doc, "out.pptx"))
	assert.Equal(t, []string{"out.pptx"}, doc.saved)
	assert.True(t, d.Sealed())

	err := d.Append(newTestBuilder().Title(TitleSpec{Title: "Late"}))
	assert.ErrorIs(t, err, ErrDeckSealed)
	assert.Equal(t, 3, d.Len())

	// A sealed deck can still be emitted into another document.
	other := newRecordingDocument()
	d.Emit(other)
	assert.Len(t, other.slides, 3)
}

func TestDeckSaveWithoutSlides(t *testing.T) {
	d := NewDeck(Widescreen)
	doc := newRecordingDocument()

	err := d.Save(doc, "out.pptx")
	assert.ErrorIs(t, err, ErrNoSlides)
	assert.Empty(t, doc.saved)
	assert.False(t, d.Sealed())
}

func TestDeckSaveWrapsDocumentError(t *testing.T) {
	d := testDeck(t)
	doc := newRecordingDocument()
	diskFull := errors.New("disk full")
	doc.err = diskFull

	err := d.Save(doc, "/tmp/out.pptx")
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "/tmp/out.pptx")
	assert.True(t, d.Sealed())
}
