package codegen

// Block is a brace-delimited region of a function body, nestable and
// carrying optional text before and after the braces.
type Block struct {
	before string
	after  string
	body   []Body
}

// NewBlock returns a block with the given leading text; pass "" for none.
func NewBlock(before string) *Block {
	return &Block{before: before}
}

// Line appends a literal line to the block.
func (b *Block) Line(line string) *Block {
	b.body = append(b.body, lineBody(line))
	return b
}

// PushBlock nests another block inside this one.
func (b *Block) PushBlock(block Block) *Block {
	b.body = append(b.body, blockBody(block))
	return b
}

// After sets the text placed after the closing brace.
func (b *Block) After(after string) *Block {
	b.after = after
	return b
}

// Render writes the block: leading text, a separating space if mid-line,
// the braces around the indented body, then the trailing text.
func (b *Block) Render(f *Formatter) {
	if b.before != "" {
		f.WriteString(b.before)
	}
	if !f.IsStartOfLine() {
		f.WriteString(" ")
	}
	f.WriteString("{\n")
	f.Indent(func(f *Formatter) {
		for i := range b.body {
			b.body[i].render(f)
		}
	})
	f.WriteString("}")
	if b.after != "" {
		f.WriteString(b.after)
	}
	f.WriteString("\n")
}
