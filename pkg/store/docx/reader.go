package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type wordDocument struct {
	Body struct {
		Paragraphs []struct {
			Texts []string `xml:"r>t"`
		} `xml:"p"`
		Tables []struct {
			Rows []struct {
				Cells []struct {
					Texts []string `xml:"p>r>t"`
				} `xml:"tc"`
			} `xml:"tr"`
		} `xml:"tbl"`
	} `xml:"body"`
}

// Contents is a flat view of a written report.
type Contents struct {
	Paragraphs []string
	Tables     [][][]string
	MediaFiles []string
}

// ReadFile is an inspection helper for generated reports: it opens a .docx package and extracts
// its top-level paragraphs, tables and media names. The report pipeline itself never reads
// documents back; tests use it to check what the writer produced.
func ReadFile(path string) (*Contents, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer zr.Close()

	contents := &Contents{}
	var document *zip.File
	for _, f := range zr.File {
		switch {
		case f.Name == "word/document.xml":
			document = f
		case strings.HasPrefix(f.Name, "word/media/"):
			contents.MediaFiles = append(contents.MediaFiles, strings.TrimPrefix(f.Name, "word/media/"))
		}
	}
	if document == nil {
		return nil, fmt.Errorf("%s has no word/document.xml part", path)
	}

	rc, err := document.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	var doc wordDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document part: %w", err)
	}

	for _, p := range doc.Body.Paragraphs {
		contents.Paragraphs = append(contents.Paragraphs, strings.Join(p.Texts, "\n"))
	}
	for _, t := range doc.Body.Tables {
		var rows [][]string
		for _, r := range t.Rows {
			cells := make([]string, 0, len(r.Cells))
			for _, c := range r.Cells {
				cells = append(cells, strings.Join(c.Texts, ""))
			}
			rows = append(rows, cells)
		}
		contents.Tables = append(contents.Tables, rows)
	}

	return contents, nil
}
