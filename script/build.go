package script

import (
	"fmt"

	"github.com/VantageDataChat/GoDeck"
)

// Build runs every slide description through b, in order, and returns the
// assembled deck.
func Build(b *godeck.Builder, s Script) (*godeck.Deck, error) {
	deck := godeck.NewDeck(b.Canvas())
	for i, spec := range s.Slides {
		slide, err := buildSlide(b, spec)
		if err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, spec.Title, err)
		}
		if err := deck.Append(slide); err != nil {
			return nil, err
		}
	}
	return deck, nil
}

func buildSlide(b *godeck.Builder, spec SlideSpec) (godeck.Slide, error) {
	switch spec.Kind {
	case KindTitle:
		return b.Title(godeck.TitleSpec{Title: spec.Title, Subtitle: spec.Subtitle}), nil

	case KindContent:
		return b.Content(godeck.ContentSpec{Title: spec.Title, Bullets: spec.Bullets, Code: spec.Code}), nil

	case KindArchitecture:
		if len(spec.Nodes) > godeck.NodeCount {
			return godeck.Slide{}, fmt.Errorf("architecture takes at most %d nodes, got %d", godeck.NodeCount, len(spec.Nodes))
		}
		arch := godeck.ArchitectureSpec{Title: spec.Title, Config: spec.Config}
		for i, name := range spec.Nodes {
			arch.Nodes[i] = godeck.NodeSpec{Name: name}
		}
		return b.Architecture(arch), nil

	case KindPipeline:
		stages := make([]godeck.StageSpec, 0, len(spec.Stages))
		for _, st := range spec.Stages {
			role := godeck.Role(st.Color)
			if role == "" {
				role = godeck.RoleHighlight
			}
			if _, err := b.Theme().Color(role); err != nil {
				return godeck.Slide{}, fmt.Errorf("stage %q: %w", st.Title, err)
			}
			stages = append(stages, godeck.StageSpec{Title: st.Title, Subtitle: st.Subtitle, Color: role})
		}
		return b.Pipeline(godeck.PipelineSpec{Title: spec.Title, Stages: stages, Command: spec.Command}), nil
	}
	return godeck.Slide{}, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
}
