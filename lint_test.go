package godeck

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deckOf(t *testing.T, slides ...Slide) *Deck {
	t.Helper()
	d := NewDeck(Widescreen)
	require.NoError(t, d.Append(slides...))
	return d
}

func TestLintFlagsOverflowingBullets(t *testing.T) {
	b := newTestBuilder()
	bullets := make([]string, 14)
	for i := range bullets {
		bullets[i] = fmt.Sprintf("Bullet number %d", i+1)
	}
	slide := b.Content(ContentSpec{Title: "Too much", Bullets: bullets})

	warnings := Lint(deckOf(t, slide), DefaultTheme)
	require.Len(t, warnings, 1)

	w := warnings[0]
	assert.Equal(t, 1, w.Slide)
	assert.Equal(t, "Too much", w.SlideName)
	box := bulletBox(slide)
	require.NotNil(t, box)
	assert.Equal(t, *box, slide.Primitives()[w.Primitive])
	assert.Contains(t, w.String(), "slide 1 (Too much)")
}

func TestLintFlagsLongCode(t *testing.T) {
	b := newTestBuilder()
	code := strings.Repeat("echo line\n", 40)
	slide := b.Content(ContentSpec{Title: "Script", Bullets: []string{"one"}, Code: code})

	warnings := Lint(deckOf(t, slide), DefaultTheme)
	require.Len(t, warnings, 1)
	assert.Equal(t, KindTextBox, slide.Primitives()[warnings[0].Primitive].Kind)
	assert.Contains(t, warnings[0].Message, "high")
}

func TestLintQuietForShortText(t *testing.T) {
	b := newTestBuilder()
	d := deckOf(t,
		b.Title(TitleSpec{Title: "Hello", Subtitle: "World"}),
		b.Content(ContentSpec{Title: "Short", Bullets: []string{"a", "b", "c"}, Code: "make"}),
		b.Architecture(ArchitectureSpec{Title: "Cluster"}),
		b.Pipeline(PipelineSpec{Title: "Flow", Stages: testStages()}),
	)
	assert.Empty(t, Lint(d, DefaultTheme))
}

func TestLintIgnoresNonWrappingBoxes(t *testing.T) {
	p := NewPlacer(Widescreen)
	long := strings.Repeat("unwrapped text ", 200)
	s := Slide{name: "Banner"}
	s.add(p.TextBox(p.At(0, 0, Inch(1), Inch(0.2)), false, Paragraph{
		Runs: []Run{{Text: long, Size: 40, Color: ColorBlack, Font: "Calibri"}},
	}))

	assert.Empty(t, Lint(deckOf(t, s), DefaultTheme))
}

func TestEstimateHeightUsesMonoAdvance(t *testing.T) {
	text := strings.Repeat("x", 100)
	body := func(font string) *TextBody {
		return &TextBody{Wrap: true, Paragraphs: []Paragraph{{Runs: []Run{{Text: text, Size: 10, Font: font}}}}}
	}
	// 100pt wide: 20 body glyphs or 16 mono glyphs per line.
	assert.InDelta(t, 5*12.0, estimateHeight(body("Calibri"), 100, "Courier New"), 0.001)
	assert.InDelta(t, 7*12.0, estimateHeight(body("Courier New"), 100, "Courier New"), 0.001)
}
