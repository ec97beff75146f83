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

// padRune fills positions created by inserting past the end of a row.
// It is never drawn as a glyph; the renderer blanks it.
const padRune = rune(0)

// A row of text in the editor
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	r := &Row{}
	r.Text = []rune(text)
	return r
}

func (r *Row) Length() int {
	return len(r.Text)
}

// InsertChar inserts a character at col, padding the row with padRune
// if col is past the end of the current text.
func (r *Row) InsertChar(col int, c rune) {
	for col > len(r.Text) {
		r.Text = append(r.Text, padRune)
	}
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// DeleteChar deletes the character at col and returns it.
// Out-of-range positions are left untouched.
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	c := r.Text[col]
	r.Text = append(r.Text[0:col], r.Text[col+1:]...)
	return c
}

// GetChar returns the character at col, or zero if there is none.
func (r *Row) GetChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	return r.Text[col]
}

// DisplayText expands stored tabs to TabWidth spaces and blanks padding.
func (r *Row) DisplayText() string {
	var s strings.Builder
	for _, c := range r.Text {
		switch c {
		case '\t':
			s.WriteString(strings.Repeat(" ", vee.TabWidth))
		case padRune:
			s.WriteRune(' ')
		default:
			s.WriteRune(c)
		}
	}
	return s.String()
}

// DisplayCol maps a storage column to the screen column where it is drawn,
// accounting for the extra width of any tabs before it.
func (r *Row) DisplayCol(col int) int {
	display := 0
	for i := 0; i < col && i < len(r.Text); i++ {
		if r.Text[i] == '\t' {
			display += vee.TabWidth
		} else {
			display++
		}
	}
	if col > len(r.Text) {
		display += col - len(r.Text)
	}
	return display
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}
