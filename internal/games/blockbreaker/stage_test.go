package blockbreaker

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-breaker/internal/core"
)

func TestBuildStagePositions(t *testing.T) {
	layout := Layout{BlockWidth: 100, BlockHeight: 30, Gap: 2, TopOffset: 24}
	blocks := BuildStage(StageMap{"X X"}, layout)

	require.Len(t, blocks, 2)
	assert.Equal(t, 1.0, blocks[0].X)
	assert.Equal(t, 25.0, blocks[0].Y)
	assert.Equal(t, 205.0, blocks[1].X)
	assert.Equal(t, 25.0, blocks[1].Y)
	for _, b := range blocks {
		assert.Equal(t, 'X', b.Code)
		assert.Equal(t, 1, b.HP)
		assert.Equal(t, 100.0, b.Width)
		assert.Equal(t, 30.0, b.Height)
	}
}

func TestBuildStageRows(t *testing.T) {
	layout := Layout{BlockWidth: 50, BlockHeight: 20, Gap: 2, TopOffset: 10}
	blocks := BuildStage(StageMap{"1 ", " 3"}, layout)

	require.Len(t, blocks, 2)
	assert.Equal(t, 1.0, blocks[0].X)
	assert.Equal(t, 11.0, blocks[0].Y)
	assert.Equal(t, 53.0, blocks[1].X)
	assert.Equal(t, 33.0, blocks[1].Y)
}

func TestBuildStageHitPoints(t *testing.T) {
	blocks := BuildStage(StageMap{"19#a"}, LayoutFor(StageMap{"19#a"}))

	require.Len(t, blocks, 4)
	assert.Equal(t, []int{1, 9, 1, 1}, []int{blocks[0].HP, blocks[1].HP, blocks[2].HP, blocks[3].HP})
	for _, b := range blocks {
		assert.Equal(t, b.HP, b.MaxHP)
		assert.False(t, b.Destroyed)
	}
}

func TestBuildStageEmpty(t *testing.T) {
	assert.Empty(t, BuildStage(StageMap{"   ", "   "}, LayoutFor(StageMap{"   ", "   "})))
	assert.Empty(t, BuildStage(nil, LayoutFor(nil)))
}

func TestLayoutFor(t *testing.T) {
	l := LayoutFor(StageMap{"X X", "   "})

	assert.InDelta(t, WindowWidth/3-Gap, l.BlockWidth, 1e-9)
	assert.InDelta(t, FieldHeight/2-Gap, l.BlockHeight, 1e-9)
	assert.Equal(t, Gap, l.Gap)
	assert.InDelta(t, 24.0, l.TopOffset, 1e-9)
}

func TestBuiltinStages(t *testing.T) {
	stages := Stages()
	require.NotEmpty(t, stages)
	center := core.PointF{X: WindowWidth / 2, Y: WindowHeight / 2}

	seen := map[string]bool{}
	for _, s := range stages {
		assert.False(t, seen[s.ID], "duplicate stage %s", s.ID)
		seen[s.ID] = true

		width := utf8.RuneCountInString(s.Map[0])
		for i, row := range s.Map {
			assert.Equal(t, width, utf8.RuneCountInString(row), "stage %s row %d", s.ID, i)
		}

		blocks := s.Blocks()
		assert.NotEmpty(t, blocks, s.ID)
		for _, b := range blocks {
			assert.GreaterOrEqual(t, b.X, 0.0)
			assert.LessOrEqual(t, b.X+b.Width, WindowWidth, s.ID)
			assert.LessOrEqual(t, b.Y+b.Height, WindowHeight/2, s.ID)
			assert.False(t, b.Bounds().Contains(center), "stage %s covers the respawn point", s.ID)
		}

		got, ok := StageByID(s.ID)
		assert.True(t, ok)
		assert.Equal(t, s.Title, got.Title)
	}

	_, ok := StageByID("nope")
	assert.False(t, ok)
}

func TestStagesReturnsCopy(t *testing.T) {
	stages := Stages()
	id, row := stages[0].ID, stages[0].Map[0]
	stages[0].ID = "mutated"
	stages[0].Map[0] = "mutated"

	_, ok := StageByID("mutated")
	assert.False(t, ok)
	got, ok := StageByID(id)
	require.True(t, ok)
	assert.Equal(t, row, got.Map[0])
	assert.Equal(t, row, Stages()[0].Map[0])

	got.Map[0] = "mutated"
	assert.Equal(t, row, builtinStages[0].Map[0])
}
