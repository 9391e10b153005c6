package script

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VantageDataChat/GoDeck"
	"github.com/VantageDataChat/GoDeck/pptx"
)

func newBuilder() *godeck.Builder {
	return godeck.NewBuilder(godeck.Widescreen, godeck.DefaultTheme)
}

func TestDefaultDeckOrder(t *testing.T) {
	s := Default()
	var kinds []Kind
	for _, slide := range s.Slides {
		kinds = append(kinds, slide.Kind)
	}
	assert.Equal(t, []Kind{KindTitle, KindPipeline, KindContent, KindArchitecture, KindContent, KindContent}, kinds)
	assert.Equal(t, "Control Plane Automated Testing", s.Slides[0].Title)
	assert.Equal(t, "Infrastructure Provisioning (Ansible)", s.Slides[2].Title)
	assert.Equal(t, "HTTP API Test Framework", s.Slides[4].Title)
	assert.Equal(t, "Summary & Benefits", s.Slides[5].Title)
	assert.Empty(t, s.Slides[5].Code)
}

func TestBuildDefault(t *testing.T) {
	deck, err := Build(newBuilder(), Default())
	require.NoError(t, err)
	require.Equal(t, 6, deck.Len())

	slides := deck.Slides()
	assert.Equal(t, "Automation Pipeline Overview", slides[1].Name())
	assert.Equal(t, "Docker Swarm Cluster Architecture", slides[3].Name())

	arrows := 0
	for _, p := range slides[1].Primitives() {
		if p.Kind == godeck.KindArrow {
			arrows++
		}
	}
	assert.Equal(t, 3, arrows)

	assert.Empty(t, godeck.Lint(deck, godeck.DefaultTheme))
}

func TestDefaultDeckSerializes(t *testing.T) {
	deck, err := Build(newBuilder(), Default())
	require.NoError(t, err)

	doc := pptx.New(deck.Canvas().Width, deck.Canvas().Height)
	path := filepath.Join(t.TempDir(), "Control_Plane_Automation.pptx")
	require.NoError(t, deck.Save(doc, path))
	assert.Equal(t, 6, doc.SlideCount())
	assert.FileExists(t, path)
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(newBuilder(), Default())
	require.NoError(t, err)
	b, err := Build(newBuilder(), Default())
	require.NoError(t, err)

	for i, s := range a.Slides() {
		assert.Equal(t, s.Primitives(), b.Slides()[i].Primitives())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		slide SlideSpec
		is    error
		msg   string
	}{
		{name: "unknown kind", slide: SlideSpec{Kind: "chart", Title: "Revenue"}, is: ErrUnknownKind},
		{name: "empty kind", slide: SlideSpec{Title: "Nothing"}, is: ErrUnknownKind},
		{name: "too many nodes", slide: SlideSpec{Kind: KindArchitecture, Nodes: []string{"a", "b", "c", "d"}}, msg: "at most 3 nodes"},
		{name: "unknown color", slide: SlideSpec{Kind: KindPipeline, Stages: []Stage{{Title: "x", Color: "purple"}}}, msg: "unknown theme role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(newBuilder(), Script{Slides: []SlideSpec{tt.slide}})
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "slide 1 "))
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestPipelineStageColorDefaultsToHighlight(t *testing.T) {
	deck, err := Build(newBuilder(), Script{Slides: []SlideSpec{
		{Kind: KindPipeline, Title: "P", Stages: []Stage{{Title: "only"}}},
	}})
	require.NoError(t, err)

	for _, p := range deck.Slides()[0].Primitives() {
		if p.Kind == godeck.KindRoundedRectangle && p.Fill != nil && *p.Fill == godeck.DefaultTheme.Highlight {
			return
		}
	}
	t.Fatal("no highlight stage box")
}

func TestLoadYAML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "deck.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Release Review", s.Title)
	require.Len(t, s.Slides, 4)
	assert.Equal(t, KindPipeline, s.Slides[1].Kind)
	assert.Len(t, s.Slides[1].Stages, 3)
	assert.Equal(t, "accent", s.Slides[1].Stages[1].Color)
	assert.Equal(t, "$ deckgen build\nPresentation saved to: deck.pptx\n", s.Slides[2].Code)
	assert.Equal(t, []string{"Primary", "Replica"}, s.Slides[3].Nodes)

	deck, err := Build(newBuilder(), s)
	require.NoError(t, err)
	assert.Equal(t, 4, deck.Len())
}

func TestLoadTOML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "deck.toml"))
	require.NoError(t, err)

	assert.Equal(t, "Quarterly release", s.Subject)
	require.Len(t, s.Slides, 3)
	assert.Equal(t, []string{"Faster startup", "Smaller images"}, s.Slides[1].Bullets)
	require.Len(t, s.Slides[2].Stages, 2)
	assert.Equal(t, "success", s.Slides[2].Stages[1].Color)

	_, err = Build(newBuilder(), s)
	assert.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "deck.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "unknown_field.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bulets")

	s, err := Load(filepath.Join("testdata", "unknown_kind.yaml"))
	require.NoError(t, err)
	_, err = Build(newBuilder(), s)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestParseTOMLRejectsUnknownKeys(t *testing.T) {
	_, err := ParseTOML([]byte("title = \"x\"\ncolour = \"red\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestYAMLAndTOMLDecodeAlike(t *testing.T) {
	fromYAML, err := Load(filepath.Join("testdata", "same.yaml"))
	require.NoError(t, err)
	fromTOML, err := Load(filepath.Join("testdata", "same.toml"))
	require.NoError(t, err)

	if diff := cmp.Diff(fromYAML, fromTOML); diff != "" {
		t.Errorf("yaml and toml scripts differ (-yaml +toml):\n%s", diff)
	}

	a, err := Build(newBuilder(), fromYAML)
	require.NoError(t, err)
	b, err := Build(newBuilder(), fromTOML)
	require.NoError(t, err)
	for i, s := range a.Slides() {
		if diff := cmp.Diff(s.Primitives(), b.Slides()[i].Primitives()); diff != "" {
			t.Errorf("slide %d differs (-yaml +toml):\n%s", i+1, diff)
		}
	}
}
