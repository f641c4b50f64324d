package domain

// BlockKind identifies the type of a ReportBlock.
type BlockKind string

const (
	BlockHeading      BlockKind = "heading"
	BlockParagraph    BlockKind = "paragraph"
	BlockPreformatted BlockKind = "preformatted"
	BlockPageBreak    BlockKind = "page_break"
	BlockPicture      BlockKind = "picture"
	BlockTable        BlockKind = "table"
)

// Alignment of a paragraph.
type Alignment string

const (
	AlignLeft    Alignment = ""
	AlignJustify Alignment = "both"
)

// ReportDocument is the in-memory document tree serialized once at the end of a run.
type ReportDocument struct {
	Blocks []ReportBlock
}

// ReportBlock is one body element. Only the fields relevant to Kind are set.
type ReportBlock struct {
	Kind      BlockKind
	Text      string
	Level     int // heading level, 0 is the document title
	Alignment Alignment
	Picture   *Picture
	Table     *Table
}

// Picture is a PNG on disk scaled to WidthEMU, keeping the aspect ratio of the source.
type Picture struct {
	Name      string
	Path      string
	WidthEMU  int64
	HeightEMU int64
}

// Table is a plain grid; Rows[0] is the header row.
type Table struct {
	Columns int
	Rows    [][]string
}

const EMUPerInch = 914400

func (d *ReportDocument) AddHeading(text string, level int) {
	d.Blocks = append(d.Blocks, ReportBlock{Kind: BlockHeading, Text: text, Level: level})
}

func (d *ReportDocument) AddParagraph(text string, align Alignment) {
	d.Blocks = append(d.Blocks, ReportBlock{Kind: BlockParagraph, Text: text, Alignment: align})
}

// AddPreformatted adds a paragraph whose line breaks and leading spaces are kept.
func (d *ReportDocument) AddPreformatted(text string) {
	d.Blocks = append(d.Blocks, ReportBlock{Kind: BlockPreformatted, Text: text})
}

func (d *ReportDocument) AddPageBreak() {
	d.Blocks = append(d.Blocks, ReportBlock{Kind: BlockPageBreak})
}

func (d *ReportDocument) AddPicture(p *Picture) {
	d.Blocks = append(d.Blocks, ReportBlock{Kind: BlockPicture, Picture: p})
}

// AddTable adds a table with the given header row and returns it so rows can be appended.
func (d *ReportDocument) AddTable(header []string) *Table {
	t := &Table{Columns: len(header), Rows: [][]string{header}}
	d.Blocks = append(d.Blocks, ReportBlock{Kind: BlockTable, Table: t})
	return t
}

func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// Tables returns every table of the document in order.
func (d *ReportDocument) Tables() []*Table {
	var tables []*Table
	for _, b := range d.Blocks {
		if b.Kind == BlockTable {
			tables = append(tables, b.Table)
		}
	}
	return tables
}
