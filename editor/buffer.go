//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	vee "github.com/vee-editor/vee/types"
)

// A Buffer holds the text being edited as an ordered list of rows.
// It always contains at least one row, and every operation on it is
// total: positions that don't exist grow the buffer on insertion and
// are ignored on removal.

type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

// EnsureRow appends empty rows until a row exists at the given index.
func (b *Buffer) EnsureRow(row int) {
	for row >= len(b.rows) {
		b.rows = append(b.rows, NewRow(""))
	}
}

// Insert puts a character at (col, row), growing the buffer as needed.
// Line breaks are cursor motion, not content, so '\n' is never stored.
func (b *Buffer) Insert(col, row int, c rune) {
	if c == '\n' {
		return
	}
	b.EnsureRow(row)
	b.rows[row].InsertChar(col, c)
}

// Remove deletes the character at (col, row) and returns it.
// Positions with no character are a silent no-op.
func (b *Buffer) Remove(col, row int) rune {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return b.rows[row].DeleteChar(col)
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(row int) int {
	if row < len(b.rows) {
		return b.rows[row].Length()
	}
	return 0
}

func (b *Buffer) GetCharacter(row, col int) rune {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return b.rows[row].GetChar(col)
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) DisplayCol(row, col int) int {
	if row < len(b.rows) {
		return b.rows[row].DisplayCol(col)
	}
	return col
}

// draw text in an area defined by origin and size with a specified offset into the buffer
func (b *Buffer) Render(origin vee.Point, size vee.Size, offset vee.Size, display vee.Display) {
	for i := origin.Row; i < origin.Row+size.Rows; i++ {
		var line string
		if (i + offset.Rows) < len(b.rows) {
			line = b.rows[i+offset.Rows].DisplayText()
			if offset.Cols < len(line) {
				line = line[offset.Cols:]
			} else {
				line = ""
			}
		} else {
			line = "~"
		}
		// truncate line to fit screen
		if len(line) > size.Cols {
			line = line[0:size.Cols]
		}
		for j, c := range line {
			display.SetCell(j+origin.Col, i, c, vee.ColorWhite)
		}
	}
}
