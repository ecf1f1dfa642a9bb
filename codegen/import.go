package codegen

// Import is a use statement. The visibility is recorded on the entity but
// not consumed by any render path.
type Import struct {
	line string
	vis  string
}

// NewImport returns an import of ty from path, rendered as path::ty.
func NewImport(path, ty string) *Import {
	return &Import{line: path + "::" + ty}
}

// Vis sets the import's visibility.
func (im *Import) Vis(vis string) *Import {
	im.vis = vis
	return im
}
