package docx

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"
	"github.com/rs/zerolog"
)

// TableStyle is applied to every table of the report.
const TableStyle = "TableGrid"

// Writer serializes a ReportDocument to a .docx file.
type Writer interface {
	Save(ctx context.Context, doc *domain.ReportDocument, path string) error
}

type writer struct{}

func NewWriter() Writer {
	return &writer{}
}

// Save builds the document with godocx and writes it to path, replacing any existing file.
// Nothing is written when a block cannot be converted.
func (wr *writer) Save(ctx context.Context, doc *domain.ReportDocument, path string) error {
	if err := validate(doc); err != nil {
		return err
	}

	out, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	for i, b := range doc.Blocks {
		switch b.Kind {
		case domain.BlockHeading:
			if _, err := out.AddHeading(b.Text, uint(b.Level)); err != nil {
				return fmt.Errorf("failed to add heading %d: %w", i, err)
			}
		case domain.BlockParagraph:
			p := out.AddParagraph(b.Text)
			if b.Alignment == domain.AlignJustify {
				p.Justification("both")
			}
		case domain.BlockPreformatted:
			for _, line := range strings.Split(b.Text, "\n") {
				out.AddParagraph(line)
			}
		case domain.BlockPageBreak:
			out.AddPageBreak()
		case domain.BlockPicture:
			width := units.Inch(float64(b.Picture.WidthEMU) / domain.EMUPerInch)
			height := units.Inch(float64(b.Picture.HeightEMU) / domain.EMUPerInch)
			if _, err := out.AddPicture(b.Picture.Path, width, height); err != nil {
				return fmt.Errorf("failed to add picture %s: %w", b.Picture.Path, err)
			}
		case domain.BlockTable:
			tbl := out.AddTable()
			tbl.Style(TableStyle)
			for _, cells := range b.Table.Rows {
				row := tbl.AddRow()
				for _, text := range cells {
					row.AddCell().AddParagraph(text)
				}
			}
		}
	}

	if err := out.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("blocks", len(doc.Blocks)).
		Msg("document written")
	return nil
}

func validate(doc *domain.ReportDocument) error {
	for i, b := range doc.Blocks {
		switch b.Kind {
		case domain.BlockHeading, domain.BlockParagraph, domain.BlockPreformatted, domain.BlockPageBreak:
		case domain.BlockPicture:
			if b.Picture == nil || b.Picture.Path == "" {
				return fmt.Errorf("block %d: picture without a source file", i)
			}
		case domain.BlockTable:
			if b.Table == nil || b.Table.Columns == 0 {
				return fmt.Errorf("block %d: table without columns", i)
			}
		default:
			return fmt.Errorf("block %d: unsupported block kind %q", i, b.Kind)
		}
	}
	return nil
}
