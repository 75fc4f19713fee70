package perspective

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
)

// allEncodings - every 9 digit string over {0,1,2}.
func allEncodings() []string {
	encodings := []string{""}
	for i := 0; i < entity.CellCount; i++ {
		next := make([]string, 0, len(encodings)*3)
		for _, prefix := range encodings {
			next = append(next, prefix+"0", prefix+"1", prefix+"2")
		}
		encodings = next
	}

	return encodings
}

func TestInvert(t *testing.T) {
	t.Run("Swaps pieces and keeps empty cells", func(t *testing.T) {
		assert.Equal(t, "220100000", Invert("110200000"))
	})

	t.Run("Inverting twice is the identity", func(t *testing.T) {
		for _, flat := range allEncodings() {
			if Invert(Invert(flat)) != flat {
				t.Fatalf("invert is not an involution for %s", flat)
			}
		}
	})
}

func TestFirstAndSecondPerson(t *testing.T) {
	t.Run("Player one's first person view is the board itself", func(t *testing.T) {
		assert.Equal(t, "110200000", FirstPerson("110200000", entity.PlayerOne))
		assert.Equal(t, "220100000", FirstPerson("110200000", entity.PlayerTwo))
	})

	t.Run("Player two's second person view is the board itself", func(t *testing.T) {
		assert.Equal(t, "220100000", SecondPerson("110200000", entity.PlayerOne))
		assert.Equal(t, "110200000", SecondPerson("110200000", entity.PlayerTwo))
	})

	t.Run("Views are complementary for every board", func(t *testing.T) {
		for _, flat := range allEncodings() {
			if FirstPerson(flat, entity.PlayerOne) != flat || SecondPerson(flat, entity.PlayerTwo) != flat {
				t.Fatalf("identity view broken for %s", flat)
			}
			if FirstPerson(flat, entity.PlayerTwo) != SecondPerson(flat, entity.PlayerOne) {
				t.Fatalf("inverted views differ for %s", flat)
			}
		}
	})
}

func TestDiff(t *testing.T) {
	t.Run("Returns the (col, row) of the new piece", func(t *testing.T) {
		// Given: a piece added in the third column of the first row
		pos, ok := Diff("110200000", "112200000")

		// Then: (2, 0) is reported
		assert.True(t, ok)
		assert.Equal(t, entity.Position{Col: 2, Row: 0}, pos)
	})

	t.Run("Returns no difference for identical boards", func(t *testing.T) {
		pos, ok := Diff("110200000", "110200000")

		assert.False(t, ok)
		assert.Equal(t, entity.NoPosition, pos)
	})

	t.Run("Ignores cells that were already filled", func(t *testing.T) {
		pos, ok := Diff("120000000", "210000000")

		assert.False(t, ok)
		assert.Equal(t, entity.NoPosition, pos)
	})

	t.Run("Reports only the first of several new pieces", func(t *testing.T) {
		pos, ok := Diff("000000000", "000010002")

		assert.True(t, ok)
		assert.Equal(t, entity.Position{Col: 1, Row: 1}, pos)
	})

	t.Run("Every single placement is found", func(t *testing.T) {
		for i := 0; i < entity.CellCount; i++ {
			cur := []byte("000000000")
			cur[i] = '2'

			pos, ok := Diff("000000000", string(cur))

			assert.True(t, ok)
			assert.Equal(t, i, pos.Index())
		}
	})
}
