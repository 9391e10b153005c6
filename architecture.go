package godeck

import "fmt"

// NodeCount is the number of node boxes on the architecture slide.
const NodeCount = 3

// NodeSpec names one cluster node box.
type NodeSpec struct {
	Name string
}

// ArchitectureSpec is the input of the architecture slide. The node count is
// part of the type: the slot table below has exactly NodeCount rows.
type ArchitectureSpec struct {
	Title  string
	Nodes  [NodeCount]NodeSpec
	Config string // label of the shared config panel; "\n" splits lines
}

const (
	defaultServiceLabel = "Control Plane\n:3000"
	defaultConfigLabel  = "nodes_config.json\n[\"ip1\", \"ip2\", \"ip3\"]"
)

// nodeSlots holds the left edge of each node box.
var nodeSlots = [NodeCount]int64{Inch(0.8), Inch(4.9), Inch(9)}

var (
	nodeTop       = Inch(2.2)
	nodeWidth     = Inch(3.5)
	nodeHeight    = Inch(3)
	nodeBorder    = Point(2)
	serviceInset  = Inch(0.3)
	serviceTop    = Inch(0.9)
	serviceWidth  = Inch(2.9)
	serviceHeight = Inch(1.8)
	configTop     = Inch(5.8)
	configHeight  = Inch(0.8)
)

// Architecture builds the cluster diagram: three node boxes, each holding a
// control-plane sub-box, and a config panel centered below them.
func (b *Builder) Architecture(spec ArchitectureSpec) Slide {
	s := Slide{name: spec.Title}
	b.titleBar(&s, spec.Title)

	for i, x := range nodeSlots {
		name := spec.Nodes[i].Name
		if name == "" {
			name = fmt.Sprintf("Node %d", i+1)
		}
		b.node(&s, name, x)
	}

	label := spec.Config
	if label == "" {
		label = defaultConfigLabel
	}
	panel := b.place.CenteredX(configTop, nodeWidth, configHeight)
	s.add(
		b.place.RoundedRectangle(panel, b.theme.BackgroundDark, nil),
		b.place.TextBox(
			b.place.Inset(panel, 0, Inch(0.1), panel.W, Inch(0.6)),
			false,
			b.mono(14, b.theme.Muted, HorizontalCenter).para(label),
		),
	)
	return s
}

// node draws one row of the slot table.
func (b *Builder) node(s *Slide, name string, x int64) {
	box := b.place.At(x, nodeTop, nodeWidth, nodeHeight)
	service := b.place.Inset(box, serviceInset, serviceTop, serviceWidth, serviceHeight)
	s.add(
		b.place.RoundedRectangle(box, b.theme.Highlight, &Border{Color: b.theme.Primary, Width: nodeBorder}),
		b.place.TextBox(
			b.place.Inset(box, 0, Inch(0.2), box.W, Inch(0.5)),
			false,
			b.body(18, true, b.theme.TextLight, HorizontalCenter).para(name),
		),
		b.place.Rectangle(service, b.theme.Accent),
		b.place.TextBox(
			b.place.Inset(service, 0, Inch(0.5), service.W, Inch(0.8)),
			false,
			b.body(16, true, b.theme.TextLight, HorizontalCenter).para(defaultServiceLabel),
		),
	)
}
