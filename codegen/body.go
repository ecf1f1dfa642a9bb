package codegen

// Body is one element of a function or block body: either a literal line
// or a nested block.
type Body struct {
	text  string
	block *Block
}

func lineBody(text string) Body {
	return Body{text: text}
}

func blockBody(b Block) Body {
	return Body{block: &b}
}

func (b *Body) render(f *Formatter) {
	if b.block != nil {
		b.block.Render(f)
		return
	}
	f.WriteString(b.text + "\n")
}
