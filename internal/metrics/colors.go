package metrics

// CategoryPalette is the fixed set of colors assigned to categories that
// lack an explicit color of their own.
var CategoryPalette = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#8B5CF6", // purple
	"#F97316", // orange
	"#EC4899", // pink
	"#14B8A6", // teal
}

// PaletteIndex hashes a category name into a stable palette slot. The hash
// mirrors the classic string hash (h = code + (h<<5) - h) over the name's
// runes; negative results are made positive before the modulo so the index
// is always valid, including for empty and non-ASCII names.
func PaletteIndex(name string, size int) int {
	if size <= 0 {
		return 0
	}

	var h int32
	for _, r := range name {
		h = int32(r) + (h << 5) - h
	}

	idx := int64(h)
	if idx < 0 {
		idx = -idx
	}
	return int(idx % int64(size))
}

// CategoryColor returns the deterministic palette color for a category name.
func CategoryColor(name string) string {
	return CategoryPalette[PaletteIndex(name, len(CategoryPalette))]
}
