package note

// BlockKind discriminates the block shapes a layout can contain.
type BlockKind string

const (
	// BlockGroup is a run of labeled lines, optionally under a heading
	// ("PATIENT INFORMATION:", "SURGICAL TEAM:").
	BlockGroup BlockKind = "group"
	// BlockSection is a titled body that renders as text or as a bulleted
	// list depending on the stored value's kind.
	BlockSection BlockKind = "section"
	// BlockSignature is the footer: a dash rule followed by labeled lines
	// and a timestamp.
	BlockSignature BlockKind = "signature"
	// BlockRule is a bare closing rule of '=' characters.
	BlockRule BlockKind = "rule"
)

// Line is a single labeled entry inside a group or signature block.
type Line struct {
	// Label precedes the value ("MRN", "Attending Physician").
	Label string
	// Field names the stored field backing the line. Empty for stamp lines.
	Field string
	// Required lines render the placeholder marker when the field is
	// missing; optional lines are skipped entirely.
	Required bool
	// Stamp lines render the render-time clock instead of a field value.
	Stamp bool
}

// Block is one element of a template's fixed document layout.
type Block struct {
	Kind BlockKind
	// Title is the group heading or section title. Groups may omit it.
	Title string
	// Lines populate group and signature blocks.
	Lines []Line
	// Field backs section blocks.
	Field string
	// Required sections render the placeholder marker when the field is
	// missing; optional sections are skipped.
	Required bool
}

// Convenience constructors keep the variant layout declarations compact.

func group(title string, lines ...Line) Block {
	return Block{Kind: BlockGroup, Title: title, Lines: lines}
}

func section(title, field string) Block {
	return Block{Kind: BlockSection, Title: title, Field: field}
}

func required(title, field string) Block {
	return Block{Kind: BlockSection, Title: title, Field: field, Required: true}
}

func signature(lines ...Line) Block {
	return Block{Kind: BlockSignature, Lines: lines}
}

func rule() Block {
	return Block{Kind: BlockRule}
}

func line(label, field string) Line {
	return Line{Label: label, Field: field}
}

func requiredLine(label, field string) Line {
	return Line{Label: label, Field: field, Required: true}
}

func stampLine(label string) Line {
	return Line{Label: label, Stamp: true}
}
