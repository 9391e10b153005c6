package godeck

// StageSpec describes one pipeline stage box.
type StageSpec struct {
	Title    string // "\n" splits lines
	Subtitle string
	Color    Role
}

// PipelineSpec is the input of the pipeline slide.
type PipelineSpec struct {
	Title   string
	Stages  []StageSpec
	Command string // literal command sequence shown in the terminal panel
}

var (
	stageStartX = Inch(0.8)
	stageTop    = Inch(2.5)
	stageWidth  = Inch(2.5)
	stageHeight = Inch(2)
	stageGap    = Inch(0.5)
	arrowWidth  = Inch(0.3)
	arrowHeight = Inch(0.4)
	arrowTop    = Inch(0.8)
	termTop     = Inch(5.2)
	termHeight  = Inch(1.5)
	termWidth   = Inch(11.7)
	termPadding = Inch(0.2)
)

// StagePitch is the distance between the left edges of adjacent stages.
func StagePitch() int64 { return stageWidth + stageGap }

// Pipeline builds the left-to-right stage diagram with an arrow in every gap
// and a terminal panel holding the command sequence below the stages.
func (b *Builder) Pipeline(spec PipelineSpec) Slide {
	s := Slide{name: spec.Title}
	b.titleBar(&s, spec.Title)

	title := b.body(20, true, b.theme.TextLight, HorizontalCenter)
	subtitle := b.body(14, false, b.theme.Subtle, HorizontalCenter)

	for i, stage := range spec.Stages {
		x := Slot(stageStartX, i, stageWidth, stageGap)
		box := b.place.At(x, stageTop, stageWidth, stageHeight)
		s.add(
			b.place.RoundedRectangle(box, b.theme.Resolve(stage.Color), nil),
			b.place.TextBox(b.place.Inset(box, 0, Inch(0.4), box.W, Inch(1)), false, title.para(stage.Title)),
			b.place.TextBox(b.place.Inset(box, 0, Inch(1.4), box.W, Inch(0.5)), false, subtitle.para(stage.Subtitle)),
		)
		if i < len(spec.Stages)-1 {
			mid := GapMidpoint(x, stageWidth, stageGap)
			s.add(b.place.Arrow(b.place.CenteredOn(mid, stageTop+arrowTop, arrowWidth, arrowHeight), b.theme.TextDark))
		}
	}

	terminal := b.place.At(stageStartX, termTop, termWidth, termHeight)
	s.add(
		b.place.RoundedRectangle(terminal, b.theme.BackgroundDark, nil),
		b.place.TextBox(
			b.place.Inset(terminal, termPadding, termPadding, terminal.W-2*termPadding, terminal.H-termPadding),
			false,
			b.mono(16, b.theme.Muted, HorizontalLeft).para(spec.Command),
		),
	)
	return s
}
