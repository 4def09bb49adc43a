package texpack

import (
	"errors"
	"fmt"
	"strings"
)

// Heuristic is a bitfield used for configuration of a rectangle packing algorithm, including the
// general type, bin selection method, and strategy for how to split empty areas. Specific
// combinations of values can be XOR'ed together to achieve the desired behavior.
//
// Note that not not all combinations are valid, each constant of this type will indicate what it
// is valid with. If in doubt, simply use a preset.
//
// To test if a value is valid, use the Validate function, which will return an error message
// describing the issue. When an invalid value is used, the algorithm default will be used, but
// otherwise no error will occur.
type Heuristic uint16

const (
	/**********************************************************************************************
	* Algorithm types
	**********************************************************************************************/

	// MaxRects selects the MaxRects algorithm for packing. This generally results in the
	// most efficiently packed results when packing to a static size. It can result in a lot of
	// waste if a sensible size and bin heustic is not chosen for the given inputs, but has the
	// most potential for efficiency.
	//
	// Type: Algorithm
	MaxRects Heuristic = 0x0

	// Skyline selects the Skyline algorithm for packing. Skyline provides a good balance between
	// speed and efficiency, and is good for maintaining the least amount of waste at any given
	// time, making it a good choice for dynamic data and simply using whatever the final size may
	// be.
	//
	// Type: Algorithm
	Skyline = 0x1

	// Guillotine selects the Guillotine algorithm for packing. This algorithm is typically
	// faster, but is much more sensitive to choosing the correct packing/splitting methods for
	// specific inputs. This makes it less "general-purpose", but can still be the best choice
	// in certain situations where the input sizes are predictable.
	//
	// Type: Algorithm
	Guillotine = 0x2

	// Shelf selects the Shelf algorithm for packing. Rectangles are laid out left to right in
	// rows, opening a new row below when the current one is full. It is the fastest option and
	// wastes the most space, but keeps rows aligned, which suits glyphs and other inputs of
	// uniform height.
	//
	// Type: Algorithm
	Shelf = 0x3

	/**********************************************************************************************
	* Bin-Selection
	**********************************************************************************************/

	// BestShortSideFit (BSSF) positions the rectangle against the short side of a free rectangle
	// into which it fits the best.
	//
	//	* Type: Bin-Selection
	//	* Valid With: MaxRects, Guillotine
	BestShortSideFit = 0x00
	// BestLongSideFit (BLSF) positions the rectangle against the long side of a free rectangle
	// into which it fits the best.
	//
	//	* Type: Bin-Selection
	//	* Valid With: MaxRects, Guillotine
	BestLongSideFit = 0x10
	// BestAreaFit (BAF) positions the rectangle into the smallest free rect into which it fits.
	//
	//	* Type: Bin-Selection
	//	* Valid With: MaxRects, Guillotine
	BestAreaFit = 0x20
	// BottomLeft (BL) does the Tetris placement.
	//
	//	* Type: Bin-Selection
	//	* Valid With: MaxRects, Skyline
	BottomLeft = 0x30
	// ContactPoint (CP) choosest the placement where the rectangle touches other rects as much
	// as possible.
	//
	//	* Type: Bin-Selection
	//	* Valid With: MaxRects
	ContactPoint = 0x40
	// WorstAreaFit (WAF) is the opposite of the BestAreaFit (BAF) heuristic. Contrary to its
	// name, this is not always "worse" with speciifc inputs.
	//
	//	* Type: Bin-Selection
	//	* Valid With: Guillotine
	WorstAreaFit = 0x50
	// WorstShortSideFit (WSSF) is the opposite of the BestShortSideFit (BSSF) heuristic. Contrary
	// to its name, this is not always "worse" with speciifc inputs.
	//
	//	* Type: Bin-Selection
	//	* Valid With: Guillotine
	WorstShortSideFit = 0x60
	// WorstLongSideFit (WLSF) is the opposite of the BestLongSideFit (BLSF) heuristic. Contrary
	// to its name, this is not always "worse" with speciifc inputs.
	//
	//	* Type: Bin-Selection
	//	* Valid With: Guillotine
	WorstLongSideFit = 0x70
	// MinWaste (MW) uses a "waste map" to split empty spaces and determine which placement will
	// result in the least amount of wasted space. This is most effective when flip/rotate is
	// enabled by the packer.
	//
	//	* Type: Bin-Selection
	//	* Valid With: Skyline
	MinWaste = 0x80

	/**********************************************************************************************
	* Splitting algorithms (only used with guillotine algorithms)
	**********************************************************************************************/

	// SplitShorterAxis (SAS) splits along the shorter side of the free rectangle. This is the
	// default for the Guillotine algorithm.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitShorterAxis = 0x0000

	// SplitShorterLeftoverAxis (SLAS)
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitShorterLeftoverAxis = 0x0100

	// SplitLongerLeftoverAxis (LLAS)
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitLongerLeftoverAxis = 0x0200

	// SplitMinimizeArea (MINAS) try to make a single big rectangle at the expense of making the
	// other small.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitMinimizeArea = 0x0300

	// SplitMaximizeArea (MAXAS) try to make both remaining rectangles as even-sized as possible.
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitMaximizeArea = 0x0400

	// SplitLongerAxis (LAS)
	//
	//	* Type: Split Method
	//	* Valid With: Guillotine
	SplitLongerAxis = 0x0500

	/**********************************************************************************************
	* Masks for extracting relevant bits
	**********************************************************************************************/

	typeMask  = 0x000F
	fitMask   = 0x00F0
	splitMask = 0x0F00

	/**********************************************************************************************
	* Present combinations of valid heuristics
	**********************************************************************************************/

	// MaxRectsBSSF
	//
	//	* Type: Preset
	MaxRectsBSSF = MaxRects | BestShortSideFit

	// MaxRectsBL
	//
	//	* Type: Preset
	MaxRectsBL = MaxRects | BottomLeft

	// MaxRectsCP
	//
	//	* Type: Preset
	MaxRectsCP = MaxRects | ContactPoint

	// MaxRectsBLSF
	//
	//	* Type: Preset
	MaxRectsBLSF = MaxRects | BestLongSideFit

	// MaxRectsBAF
	//
	//	* Type: Preset
	MaxRectsBAF = MaxRects | BestAreaFit

	// GuillotineBAF
	//
	//	* Type: Preset
	GuillotineBAF = Guillotine | BestAreaFit

	// GuillotineBSSF
	//
	//	* Type: Preset
	GuillotineBSSF = Guillotine | BestShortSideFit

	// GuillotineBLSF
	//
	//	* Type: Preset
	GuillotineBLSF = Guillotine | BestLongSideFit

	// GuillotineWAF
	//
	//	* Type: Preset
	GuillotineWAF = Guillotine | WorstAreaFit

	// GuillotineWSSF
	//
	//	* Type: Preset
	GuillotineWSSF = Guillotine | WorstShortSideFit

	// GuillotineWLSF
	//
	//	* Type: Preset
	GuillotineWLSF = Guillotine | WorstLongSideFit

	// SkylineBL is the default used by the atlas packer.
	//
	//	* Type: Preset
	SkylineBL = Skyline | BottomLeft

	// SkylineMinWaste
	//
	//	* Type: Preset
	SkylineMinWaste = Skyline | MinWaste

	// ShelfNextFit
	//
	//	* Type: Preset
	ShelfNextFit Heuristic = Shelf
)

// Algorithm returns the algorithm portion of the bitmask.
func (e Heuristic) Algorithm() Heuristic {
	return e & typeMask
}

// Bin returns the bin selection method portion of the bitmask.
func (e Heuristic) Bin() Heuristic {
	return e & fitMask
}

// Split returns the split method portion of the bitmask.
func (e Heuristic) Split() Heuristic {
	return e & splitMask
}

var (
	// ErrAlgorithm is returned for an unknown algorithm type.
	ErrAlgorithm = errors.New("invalid algorithm type specified")
	// ErrSplit is returned for a split method that is not valid for the algorithm type.
	ErrSplit = errors.New("split method heuristic is invalid for algorithm type")
	// ErrBin is returned for a bin selection method that is not valid for the algorithm type.
	ErrBin = errors.New("bin method heuristic is invalid for algorithm type")
)

// Validate tests whether the combination of heuristics are in good form. A value of nil is
// returned upon success, otherwise an error with message explaining the error.
//
// Note that invalid heuristics will silently fail and cause the packer to revert to its default
// for that setting. Config.Validate rejects them up front.
func (e Heuristic) Validate() error {
	bin := e & fitMask
	split := e & splitMask

	if e&^(typeMask|fitMask|splitMask) != 0 {
		return ErrAlgorithm
	}

	switch e & typeMask {
	case MaxRects:
		if split != 0 {
			return ErrSplit
		}
		switch bin {
		case BestShortSideFit, BestAreaFit, BottomLeft, ContactPoint, BestLongSideFit:
		default:
			return ErrBin
		}
	case Skyline:
		if split != 0 {
			return ErrSplit
		}
		switch bin {
		case BottomLeft, MinWaste:
		default:
			return ErrBin
		}
	case Guillotine:
		switch split {
		case SplitShorterAxis, SplitShorterLeftoverAxis, SplitLongerLeftoverAxis, SplitMinimizeArea, SplitMaximizeArea, SplitLongerAxis:
		default:
			return ErrSplit
		}
		switch bin {
		case BestShortSideFit, BestLongSideFit, BestAreaFit, WorstAreaFit, WorstShortSideFit, WorstLongSideFit:
		default:
			return ErrBin
		}
	case Shelf:
		if split != 0 {
			return ErrSplit
		}
		if bin != 0 {
			return ErrBin
		}
	default:
		return ErrAlgorithm
	}

	return nil
}

var (
	algorithmNames = map[Heuristic]string{
		MaxRects:   "MaxRects",
		Skyline:    "Skyline",
		Guillotine: "Guillotine",
		Shelf:      "Shelf",
	}
	binNames = map[Heuristic]string{
		BestShortSideFit:  "BSSF",
		BestLongSideFit:   "BLSF",
		BestAreaFit:       "BAF",
		BottomLeft:        "BL",
		ContactPoint:      "CP",
		WorstAreaFit:      "WAF",
		WorstShortSideFit: "WSSF",
		WorstLongSideFit:  "WLSF",
		MinWaste:          "MW",
	}
	splitNames = map[Heuristic]string{
		SplitShorterAxis:         "SAS",
		SplitShorterLeftoverAxis: "SLAS",
		SplitLongerLeftoverAxis:  "LLAS",
		SplitMinimizeArea:        "MINAS",
		SplitMaximizeArea:        "MAXAS",
		SplitLongerAxis:          "LAS",
	}
)

// String returns the string representation of the heuristic, such as "Skyline-BL" or
// "Guillotine-BAF-SAS". The result is accepted by ParseHeuristic.
func (e Heuristic) String() string {
	var sb strings.Builder

	algo := e & typeMask
	name, ok := algorithmNames[algo]
	if !ok {
		return fmt.Sprintf("Heuristic(%#04x)", uint16(e))
	}
	sb.WriteString(name)

	if algo == Shelf {
		return sb.String()
	}

	if bin, ok := binNames[e&fitMask]; ok {
		sb.WriteRune('-')
		sb.WriteString(bin)
	}

	if algo == Guillotine {
		if split, ok := splitNames[e&splitMask]; ok {
			sb.WriteRune('-')
			sb.WriteString(split)
		}
	}
	return sb.String()
}

// ParseHeuristic parses a name in the form produced by String. Matching is case-insensitive,
// and omitted parts take a default, so "skyline" is the same as "Skyline-BL" and "maxrects" is
// "MaxRects-BL". The result is validated before it is returned.
func ParseHeuristic(s string) (Heuristic, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")

	var h Heuristic
	if !lookupName(algorithmNames, parts[0], &h) {
		return 0, fmt.Errorf("%w: %q", ErrAlgorithm, s)
	}

	if len(parts) == 1 {
		switch h {
		case MaxRects, Skyline:
			h |= BottomLeft
		case Guillotine:
			h |= BestAreaFit
		}
	} else {
		var bin Heuristic
		if !lookupName(binNames, parts[1], &bin) {
			return 0, fmt.Errorf("%w: %q", ErrBin, s)
		}
		h |= bin
	}

	if len(parts) > 2 {
		var split Heuristic
		if len(parts) > 3 || !lookupName(splitNames, parts[2], &split) {
			return 0, fmt.Errorf("%w: %q", ErrSplit, s)
		}
		h |= split
	}

	if err := h.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %q", err, s)
	}
	return h, nil
}

func lookupName(names map[Heuristic]string, s string, result *Heuristic) bool {
	for value, name := range names {
		if strings.EqualFold(name, s) {
			*result = value
			return true
		}
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (e Heuristic) MarshalText() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Heuristic) UnmarshalText(text []byte) error {
	h, err := ParseHeuristic(string(text))
	if err != nil {
		return err
	}
	*e = h
	return nil
}

// Set parses s into the heuristic, so that it can be used as a command-line flag value.
func (e *Heuristic) Set(s string) error {
	return e.UnmarshalText([]byte(s))
}

// Type returns the flag type name.
func (e *Heuristic) Type() string {
	return "heuristic"
}

// vim: ts=4
