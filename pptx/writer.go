package pptx

import (
	"archive/zip"
	"fmt"
	"io"
)

// packageWriter serializes one Document into the zip container.
type packageWriter struct {
	doc *Document
}

func (w *packageWriter) write(out io.Writer) error {
	if w.doc == nil {
		return fmt.Errorf("document is nil")
	}

	zw := zip.NewWriter(out)

	parts := []func(*zip.Writer) error{
		w.writeContentTypes,
		w.writeRootRels,
		w.writeAppProperties,
		w.writeCoreProperties,
		w.writePresentation,
		w.writePresentationRels,
		w.writePresProps,
		w.writeViewProps,
		w.writeTableStyles,
		w.writeSlideMaster,
		w.writeSlideLayout,
		w.writeTheme,
	}
	for _, part := range parts {
		if err := part(zw); err != nil {
			return err
		}
	}

	for i, s := range w.doc.slides {
		if err := w.writeSlide(zw, s, i+1); err != nil {
			return err
		}
		if err := w.writeSlideRels(zw, i+1); err != nil {
			return err
		}
	}

	return zw.Close()
}
