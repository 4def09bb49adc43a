package texpack

// Frame describes where a texture was placed inside an atlas page.
type Frame struct {
	// Key uniquely identifies the texture within its page.
	Key string `json:"key" toml:"key"`
	// Frame is the placed rectangle in atlas coordinates. Border padding is applied, extrusion
	// is not included.
	Frame Rect `json:"frame" toml:"frame"`
	// Rotated is set when the texture was turned 90° clockwise to fit.
	Rotated bool `json:"rotated" toml:"rotated"`
	// Trimmed is set when transparent borders were removed before packing.
	Trimmed bool `json:"trimmed" toml:"trimmed"`
	// Source holds the trim offset (X, Y) within the original texture, and the original size
	// (W, H) before any trimming.
	//
	//	         W
	//	+----------------+
	//	| (X, Y)         |
	//	|  *********     |
	//	|  *       *     | H
	//	|  *********     |
	//	+----------------+
	Source Rect `json:"source" toml:"source"`
}

// vim: ts=4
