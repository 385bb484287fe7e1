package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Renderer draws snapshots as plain text.
type Renderer struct {
	EmptySymbol string
	ShowIndexes bool
}

// Render - writes the status line followed by the three board rows.
//
//	Next player: O
//	 X | . | .
//	---+---+---
//	 . | . | .
//	---+---+---
//	 . | . | .
func (that Renderer) Render(w io.Writer, snapshot entity.Snapshot) error {
	var sb strings.Builder

	sb.WriteString(snapshot.Status())
	sb.WriteByte('\n')

	for row := 0; row < entity.RowSize; row++ {
		cells := snapshot.Board.Row(row)

		labels := make([]string, 0, entity.RowSize)
		for col, cell := range cells {
			labels = append(labels, " "+that.label(cell, row*entity.RowSize+col)+" ")
		}

		sb.WriteString(strings.Join(labels, "|"))
		sb.WriteByte('\n')

		if row < entity.RowSize-1 {
			sb.WriteString("---+---+---\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that Renderer) label(cell entity.Cell, index int) string {
	if cell != entity.Empty {
		return string(cell)
	}

	if that.ShowIndexes {
		return strconv.Itoa(index)
	}

	if that.EmptySymbol == "" {
		return " "
	}

	return that.EmptySymbol
}
