package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per level for element only
// content. Zero writes everything on one line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeHeader writes the XML declaration first.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
