package song

// BackgroundKind tags the Background variant.
type BackgroundKind int

// Background variants.
const (
	// BackgroundColor is a solid color backdrop.
	BackgroundColor BackgroundKind = iota
	// BackgroundImage is an image file reference.
	BackgroundImage
	// BackgroundVideo is a shared video file reference.
	BackgroundVideo
)

// Background is a tagged variant of {solid color, image path, video path}.
// Backgrounds compare by structural equality (same variant, same payload),
// which is what the de-duplication in AddBackground relies on. Video and
// image paths compare byte-for-byte; path normalization is the storage
// layer's business, not this model's.
type Background struct {
	Kind  BackgroundKind
	Color Color  // payload for BackgroundColor
	Path  string // payload for BackgroundImage and BackgroundVideo
}

// ColorBackground creates a solid-color background.
func ColorBackground(c Color) Background {
	return Background{Kind: BackgroundColor, Color: c}
}

// ImageBackground creates an image-file background.
func ImageBackground(path string) Background {
	return Background{Kind: BackgroundImage, Path: path}
}

// VideoBackground creates a shared-video background.
func VideoBackground(path string) Background {
	return Background{Kind: BackgroundVideo, Path: path}
}

// Equal reports structural equality.
func (b Background) Equal(other Background) bool {
	return b == other
}

// Color is an RGB triple. The canonical format packs it into a single
// integer as R | G<<8 | B<<16.
type Color struct {
	R, G, B uint8
}

// Packed returns the packed-integer encoding of the color.
func (c Color) Packed() int {
	return int(c.R) | int(c.G)<<8 | int(c.B)<<16
}

// ColorFromPacked decodes a packed-integer color.
func ColorFromPacked(v int) Color {
	return Color{
		R: uint8(v & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8((v >> 16) & 0xFF),
	}
}
