package blockbreaker

import (
	"slices"
	"unicode/utf8"
)

// Logical window in world units. Game logic never sees terminal cells.
const (
	WindowWidth  = 1280.0
	WindowHeight = 720.0

	// Gap is the spacing between neighbouring blocks.
	Gap = 2.0

	// FieldHeight is the band below TopOffset that a map's rows share. It
	// ends above the window center, where a missed ball respawns.
	FieldHeight = WindowHeight/2 - topOffset
	topOffset   = WindowHeight / 30
)

// StageMap is a grid of block codes, one string per row.
// A space means no block; digits '1'..'9' give the block that many hit
// points; any other character is a one-hit block.
// Rows are expected to have equal length.
type StageMap []string

// Layout holds the block geometry used to place a stage.
type Layout struct {
	BlockWidth  float64
	BlockHeight float64
	Gap         float64
	TopOffset   float64
}

// LayoutFor sizes blocks so the map spans the window width and the upper
// half of its height.
func LayoutFor(m StageMap) Layout {
	rows := len(m)
	if rows == 0 {
		return Layout{Gap: Gap, TopOffset: topOffset}
	}
	cols := utf8.RuneCountInString(m[0])
	if cols == 0 {
		return Layout{Gap: Gap, TopOffset: topOffset}
	}
	return Layout{
		BlockWidth:  WindowWidth/float64(cols) - Gap,
		BlockHeight: FieldHeight/float64(rows) - Gap,
		Gap:         Gap,
		TopOffset:   topOffset,
	}
}

// BuildStage creates one block per non-space cell of the map.
func BuildStage(m StageMap, l Layout) []*Block {
	blocks := make([]*Block, 0, len(m)*8)
	for row, line := range m {
		col := 0
		for _, code := range line {
			if code != ' ' {
				x := float64(col)*(l.BlockWidth+l.Gap) + l.Gap/2
				y := l.TopOffset + float64(row)*(l.BlockHeight+l.Gap) + l.Gap/2
				blocks = append(blocks, NewBlock(code, x, y, l.BlockWidth, l.BlockHeight))
			}
			col++
		}
	}
	return blocks
}

// hitPointsFor maps a block code to its starting hit points.
func hitPointsFor(code rune) int {
	if code >= '1' && code <= '9' {
		return int(code - '0')
	}
	return 1
}

// Stage is a named built-in block map.
type Stage struct {
	ID    string
	Title string
	Map   StageMap
}

// Blocks builds the stage with its natural layout.
func (s Stage) Blocks() []*Block {
	return BuildStage(s.Map, LayoutFor(s.Map))
}

// The lower rows of every map are left empty as room for the ball.
var builtinStages = []Stage{
	{
		ID:    "classic",
		Title: "Classic",
		Map: StageMap{
			"666666666666",
			"444557755444",
			"333333333333",
			"1   3333   1",
			"222    22222",
			"111111111111",
			"            ",
			"            ",
			"            ",
			"            ",
		},
	},
	{
		ID:    "wall",
		Title: "Wall",
		Map: StageMap{
			"##########",
			"##########",
			"##########",
			"##########",
			"##########",
			"          ",
			"          ",
			"          ",
			"          ",
			"          ",
		},
	},
	{
		ID:    "pyramid",
		Title: "Pyramid",
		Map: StageMap{
			"     99     ",
			"    7777    ",
			"   555555   ",
			"  33333333  ",
			" 2222222222 ",
			"111111111111",
			"            ",
			"            ",
			"            ",
			"            ",
		},
	},
	{
		ID:    "fortress",
		Title: "Fortress",
		Map: StageMap{
			"999999999999",
			"9          9",
			"9 33333333 9",
			"9 32222223 9",
			"9 33333333 9",
			"9          9",
			"            ",
			"            ",
			"            ",
			"            ",
		},
	},
}

// Stages returns all built-in stages in menu order.
func Stages() []Stage {
	out := make([]Stage, len(builtinStages))
	for i, s := range builtinStages {
		s.Map = slices.Clone(s.Map)
		out[i] = s
	}
	return out
}

// StageByID looks up a built-in stage.
func StageByID(id string) (Stage, bool) {
	for _, s := range builtinStages {
		if s.ID == id {
			s.Map = slices.Clone(s.Map)
			return s, true
		}
	}
	return Stage{}, false
}
