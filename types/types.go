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
package types

// Editor modes
const (
	ModeNormal = 0
	ModeInsert = 1
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Number of screen columns a stored tab character occupies when drawn.
const TabWidth = 8

// An ActionKind identifies one of the editing commands the commander
// can ask the editor to perform.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionNewLine
	ActionBackspace
	ActionModeToNormal
	ActionModeToInsert
	ActionAddChar
	ActionTab
	ActionDeleteChar
	ActionExit
)

// An Action is the translated form of an input event. Ch carries the
// character argument for ActionAddChar and is zero otherwise.
type Action struct {
	Kind ActionKind
	Ch   rune
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

// Modifier flags
const (
	ModAlt = 1 << iota
)

// A Key identifies a special (non-character) key press.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
)

// An Event is one input from the terminal: a key press with optional
// modifiers, or a resize carrying the new terminal size.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  int
	Size Size
}

type Color uint16

const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer

	MoveCursor(direction int)
	InsertChar(c rune)
	InsertNewline()
	InsertTab()
	BackspaceChar() rune
	DeleteChar() rune
	Bytes() []byte
}

type Buffer interface {
	Render(origin Point, size Size, offset Size, display Display)
	GetRowCount() int
	GetRowLength(row int) int
	GetCharacter(row, col int) rune
	TextAfter(row, col int) string
	DisplayCol(row, col int) int
}

type Display interface {
	SetCell(col, row int, c rune, color Color)
	SetCursor(cursor Point)
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetMessage() string
}
