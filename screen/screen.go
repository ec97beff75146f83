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
package screen

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	vee "github.com/vee-editor/vee/types"
)

// ErrInit reports a failure to take over the terminal.
var ErrInit = fmt.Errorf("screen: terminal init failed")

// Cursor shapes, set with DECSCUSR: a steady block in normal mode,
// the user's default shape in insert mode.
const (
	cursorBlock   = "\x1b[2 q"
	cursorDefault = "\x1b[0 q"
	cursorReset   = "\x1b[0 q"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size vee.Size // screen size
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	os.Stdout.WriteString(cursorReset)
	termbox.Close()
}

func (s *Screen) Render(e vee.Editor, c vee.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorDefault)
	var screenSize vee.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	// reserve the last row for the status bar
	editSize := screenSize
	editSize.Rows--
	e.SetSize(editSize)

	bufferOrigin := vee.Point{Row: 0, Col: 0}
	e.GetBuffer().Render(bufferOrigin, editSize, e.GetOffset(), s)
	s.RenderStatusBar(e, c)

	cursor := e.GetCursor()
	termbox.SetCursor(
		e.GetBuffer().DisplayCol(cursor.Row, cursor.Col)-e.GetOffset().Cols,
		cursor.Row-e.GetOffset().Rows)
	termbox.Flush()

	switch c.GetMode() {
	case vee.ModeInsert:
		os.Stdout.WriteString(cursorDefault)
	default:
		os.Stdout.WriteString(cursorBlock)
	}
}

func (s *Screen) SetCell(col int, row int, c rune, color vee.Color) {
	termbox.SetCell(col, row, c, attribute(color), termbox.ColorDefault)
}

func (s *Screen) SetCursor(cursor vee.Point) {
	termbox.SetCursor(cursor.Col, cursor.Row)
}

func modeName(mode int) string {
	switch mode {
	case vee.ModeInsert:
		return "INSERT"
	default:
		return "NORMAL"
	}
}

// Draw the status bar as a single reversed line at the bottom of the screen.
func (s *Screen) RenderStatusBar(e vee.Editor, c vee.Commander) {
	cursor := e.GetCursor()
	text := fmt.Sprintf(" %s  %d,%d ", modeName(c.GetMode()), cursor.Row+1, cursor.Col+1)
	if message := c.GetMessage(); message != "" {
		text += " " + message
	}
	finalText := fmt.Sprintf(" %d/%d ", cursor.Row+1, e.GetBuffer().GetRowCount())
	text = runewidth.FillRight(text, s.size.Cols-runewidth.StringWidth(finalText))
	text = runewidth.Truncate(text+finalText, s.size.Cols, "")
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) GetNextEvent() *vee.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
		return &vee.Event{
			Type: vee.EventResize,
			Size: vee.Size{Rows: event.Height, Cols: event.Width},
		}
	}
	var mod int
	if event.Mod&termbox.ModAlt != 0 {
		mod |= vee.ModAlt
	}
	return &vee.Event{
		Type: vee.EventKey,
		Key:  key(event.Key),
		Ch:   event.Ch,
		Mod:  mod,
	}
}

func attribute(color vee.Color) termbox.Attribute {
	switch color {
	case vee.ColorBlack:
		return termbox.ColorBlack
	case vee.ColorWhite:
		return termbox.ColorWhite
	default:
		return termbox.ColorDefault
	}
}

func key(k termbox.Key) vee.Key {
	switch k {
	case termbox.KeyArrowDown:
		return vee.KeyArrowDown
	case termbox.KeyArrowLeft:
		return vee.KeyArrowLeft
	case termbox.KeyArrowRight:
		return vee.KeyArrowRight
	case termbox.KeyArrowUp:
		return vee.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return vee.KeyBackspace2
	case termbox.KeyDelete:
		return vee.KeyDelete
	case termbox.KeyEnter:
		return vee.KeyEnter
	case termbox.KeyEsc:
		return vee.KeyEsc
	case termbox.KeySpace:
		return vee.KeySpace
	case termbox.KeyTab:
		return vee.KeyTab
	default:
		return vee.KeyUnsupported
	}
}
