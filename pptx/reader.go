package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// Summary is the outline of a presentation file: its properties and, per
// slide, the shapes in draw order.
type Summary struct {
	Title   string
	Subject string
	Creator string
	Width   int64 // in EMU
	Height  int64 // in EMU
	Slides  []SlideSummary
}

// SlideSummary describes one slide of a Summary.
type SlideSummary struct {
	Name   string
	Shapes []ShapeSummary
}

// ShapeSummary describes one shape. Geometry is the preset geometry name
// ("rect", "roundRect", "rightArrow"); TextBox is set for text boxes. Text
// holds one entry per paragraph with line breaks as "\n".
type ShapeSummary struct {
	Geometry string
	TextBox  bool
	Text     []string
}

// Limits on what Read accepts, to keep a malformed or hostile archive from
// exhausting memory.
const (
	maxZipEntrySize = 50 << 20
	maxZipTotalSize = 200 << 20
	maxZipEntries   = 10000
)

// Read opens a .pptx file and returns its summary.
func Read(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	return ReadFrom(f, info.Size())
}

// ReadFrom reads a presentation of the given size from r.
func ReadFrom(r io.ReaderAt, size int64) (*Summary, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid reader size: %d", size)
	}
	if size > maxZipTotalSize {
		return nil, fmt.Errorf("file size %d exceeds maximum allowed (%d bytes)", size, maxZipTotalSize)
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	if len(zr.File) > maxZipEntries {
		return nil, fmt.Errorf("zip archive contains too many entries (%d > %d)", len(zr.File), maxZipEntries)
	}
	files := zipIndex(zr)

	sum := &Summary{}
	// Missing core properties are acceptable.
	_ = readCoreProperties(files, sum)

	slideRels, err := readPresentation(files, sum)
	if err != nil {
		return nil, err
	}
	presRels, err := readRelationships(files, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(presRels))
	for _, rel := range presRels {
		targets[rel.ID] = rel.Target
	}

	for _, id := range slideRels {
		target, ok := targets[id]
		if !ok {
			return nil, fmt.Errorf("slide relationship %s has no target", id)
		}
		name := path.Join("ppt", target)
		slide, err := readSlide(files, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", name, err)
		}
		sum.Slides = append(sum.Slides, slide)
	}
	return sum, nil
}

func zipIndex(zr *zip.Reader) map[string]*zip.File {
	m := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		m[f.Name] = f
	}
	return m
}

var errPartNotFound = errors.New("file not found in zip")

func readFileFromZip(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errPartNotFound, name)
	}
	if f.UncompressedSize64 > maxZipEntrySize {
		return nil, fmt.Errorf("file %s exceeds maximum allowed size (%d bytes)", name, maxZipEntrySize)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in zip: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxZipEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from zip: %w", name, err)
	}
	if len(data) > maxZipEntrySize {
		return nil, fmt.Errorf("file %s actual size exceeds maximum allowed size", name)
	}
	return data, nil
}

// --- Package parts ---

type xmlRelForRead struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xmlRelsForRead struct {
	XMLName       xml.Name        `xml:"Relationships"`
	Relationships []xmlRelForRead `xml:"Relationship"`
}

func readRelationships(files map[string]*zip.File, name string) ([]xmlRelForRead, error) {
	data, err := readFileFromZip(files, name)
	if err != nil {
		return nil, err
	}
	var rels xmlRelsForRead
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships %s: %w", name, err)
	}
	return rels.Relationships, nil
}

type xmlPresentationForRead struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
	SlideSize struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

// readPresentation fills the slide size and returns the slide
// relationship ids in display order.
func readPresentation(files map[string]*zip.File, sum *Summary) ([]string, error) {
	data, err := readFileFromZip(files, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	var pres xmlPresentationForRead
	if err := xml.Unmarshal(data, &pres); err != nil {
		return nil, fmt.Errorf("failed to parse presentation.xml: %w", err)
	}
	sum.Width, sum.Height = pres.SlideSize.CX, pres.SlideSize.CY

	ids := make([]string, 0, len(pres.SlideIDs))
	for _, s := range pres.SlideIDs {
		ids = append(ids, s.RelID)
	}
	return ids, nil
}

type xmlCorePropertiesForRead struct {
	Title   string `xml:"http://purl.org/dc/elements/1.1/ title"`
	Subject string `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Creator string `xml:"http://purl.org/dc/elements/1.1/ creator"`
}

func readCoreProperties(files map[string]*zip.File, sum *Summary) error {
	data, err := readFileFromZip(files, "docProps/core.xml")
	if err != nil {
		return err
	}
	var props xmlCorePropertiesForRead
	if err := xml.Unmarshal(data, &props); err != nil {
		return fmt.Errorf("failed to parse core properties: %w", err)
	}
	sum.Title, sum.Subject, sum.Creator = props.Title, props.Subject, props.Creator
	return nil
}

// --- Slides ---

func readSlide(files map[string]*zip.File, name string) (SlideSummary, error) {
	data, err := readFileFromZip(files, name)
	if err != nil {
		return SlideSummary{}, err
	}

	var (
		slide   SlideSummary
		shape   *ShapeSummary
		para    strings.Builder
		inPara  bool
		inText  bool
		decoder = xml.NewDecoder(bytes.NewReader(data))
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return SlideSummary{}, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cSld":
				slide.Name = attr(t, "name")
			case "sp":
				shape = &ShapeSummary{}
			case "cNvSpPr":
				if shape != nil {
					shape.TextBox = attr(t, "txBox") == "1"
				}
			case "prstGeom":
				if shape != nil {
					shape.Geometry = attr(t, "prst")
				}
			case "p":
				if t.Name.Space == nsDrawingML && shape != nil {
					inPara = true
					para.Reset()
				}
			case "br":
				if inPara {
					para.WriteString("\n")
				}
			case "t":
				inText = inPara
			}

		case xml.CharData:
			if inText {
				para.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inPara && t.Name.Space == nsDrawingML {
					shape.Text = append(shape.Text, para.String())
					inPara = false
				}
			case "sp":
				if shape != nil {
					slide.Shapes = append(slide.Shapes, *shape)
					shape = nil
				}
			}
		}
	}
	return slide, nil
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// Texts returns every paragraph on the slide in draw order.
func (s SlideSummary) Texts() []string {
	var out []string
	for _, sh := range s.Shapes {
		out = append(out, sh.Text...)
	}
	return out
}
