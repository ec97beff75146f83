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
	"strings"

	vee "github.com/vee-editor/vee/types"
)

// The Editor owns the cursor and applies editing commands to a Buffer.
// Every operation is total: out-of-range positions saturate or are
// ignored, never reported as errors.
type Editor struct {
	Cursor vee.Point // cursor position
	Offset vee.Size  // display offset (placeholder, always zero)
	Buffer *Buffer   // buffer being edited
	size   vee.Size  // size of editing area
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case vee.MoveLeft:
		// move only if a character exists to the left
		if e.Cursor.Col > 0 && e.Cursor.Col-1 < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col--
		}
	case vee.MoveRight:
		// move only if a character exists to the right
		if e.Cursor.Col+1 < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
	case vee.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
		e.clampCursorCol()
	case vee.MoveDown:
		if e.Cursor.Row+1 < e.Buffer.GetRowCount() {
			e.Cursor.Row++
			e.clampCursorCol()
		}
	}
}

// don't go past the end of the current line
func (e *Editor) clampCursorCol() {
	rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
	if e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}

// InsertChar inserts a character at the cursor and advances the cursor.
func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	e.Buffer.Insert(e.Cursor.Col, e.Cursor.Row, c)
	e.Cursor.Col++
}

// InsertNewline moves the cursor to the start of a new row below it.
// Text after the cursor stays on the old row; the line is not split.
func (e *Editor) InsertNewline() {
	e.Buffer.Insert(e.Cursor.Col, e.Cursor.Row, '\n')
	e.Cursor.Row++
	e.Cursor.Col = 0
	e.Buffer.EnsureRow(e.Cursor.Row)
}

// InsertTab stores a single tab character at the cursor. The renderer
// expands it to TabWidth columns at draw time.
func (e *Editor) InsertTab() {
	e.Buffer.Insert(e.Cursor.Col, e.Cursor.Row, '\t')
	e.Cursor.Col++
}

// BackspaceChar deletes the character before the cursor and returns it.
// At the start of a row it moves the cursor up one row without joining
// the rows.
func (e *Editor) BackspaceChar() rune {
	if e.Cursor.Col > 0 {
		c := e.Buffer.Remove(e.Cursor.Col-1, e.Cursor.Row)
		e.Cursor.Col--
		return c
	}
	if e.Cursor.Row > 0 {
		e.Cursor.Row--
	}
	return 0
}

// DeleteChar deletes the character at the cursor and returns it.
// The cursor does not move.
func (e *Editor) DeleteChar() rune {
	return e.Buffer.Remove(e.Cursor.Col, e.Cursor.Row)
}

// Bytes returns the buffer contents with rows joined by newlines.
// Padding characters come out as spaces.
func (e *Editor) Bytes() []byte {
	var s strings.Builder
	for i, row := range e.Buffer.rows {
		if i > 0 {
			s.WriteRune('\n')
		}
		for _, c := range row.Text {
			if c == padRune {
				s.WriteRune(' ')
			} else {
				s.WriteRune(c)
			}
		}
	}
	return []byte(s.String())
}

func (e *Editor) GetCursor() vee.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor vee.Point) {
	e.Cursor = cursor
}

func (e *Editor) SetSize(s vee.Size) {
	e.size = s
}

func (e *Editor) GetOffset() vee.Size {
	return e.Offset
}

func (e *Editor) GetBuffer() vee.Buffer {
	return e.Buffer
}
