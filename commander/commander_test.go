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
package commander

import (
	"strings"
	"testing"

	"github.com/vee-editor/vee/editor"
	vee "github.com/vee-editor/vee/types"
)

func setup() (*editor.Editor, *Commander) {
	e := editor.NewEditor()
	return e, NewCommander(e)
}

func keyEvent(k vee.Key) *vee.Event {
	return &vee.Event{Type: vee.EventKey, Key: k}
}

func charEvent(ch rune) *vee.Event {
	return &vee.Event{Type: vee.EventKey, Ch: ch}
}

func TestTranslateNormalMode(t *testing.T) {
	_, c := setup()
	tests := []struct {
		event *vee.Event
		kind  vee.ActionKind
		ok    bool
	}{
		{charEvent('q'), vee.ActionExit, true},
		{charEvent('i'), vee.ActionModeToInsert, true},
		{charEvent('d'), vee.ActionDeleteChar, true},
		{keyEvent(vee.KeyDelete), vee.ActionDeleteChar, true},
		{keyEvent(vee.KeyArrowUp), vee.ActionMoveUp, true},
		{keyEvent(vee.KeyArrowDown), vee.ActionMoveDown, true},
		{keyEvent(vee.KeyArrowLeft), vee.ActionMoveLeft, true},
		{keyEvent(vee.KeyArrowRight), vee.ActionMoveRight, true},
		{charEvent('z'), vee.ActionNone, false},
		{keyEvent(vee.KeyEnter), vee.ActionNone, false},
	}
	for _, test := range tests {
		action, ok := c.Translate(test.event)
		if ok != test.ok || action.Kind != test.kind {
			t.Errorf("Translate(%+v) = (%v, %v), expected (%v, %v)",
				test.event, action.Kind, ok, test.kind, test.ok)
		}
	}
}

func TestTranslateInsertMode(t *testing.T) {
	_, c := setup()
	c.SetMode(vee.ModeInsert)
	tests := []struct {
		event *vee.Event
		kind  vee.ActionKind
		ch    rune
		ok    bool
	}{
		{keyEvent(vee.KeyEsc), vee.ActionModeToNormal, 0, true},
		{&vee.Event{Type: vee.EventKey, Ch: 'i', Mod: vee.ModAlt}, vee.ActionModeToNormal, 0, true},
		{keyEvent(vee.KeyBackspace2), vee.ActionBackspace, 0, true},
		{keyEvent(vee.KeyEnter), vee.ActionNewLine, 0, true},
		{keyEvent(vee.KeyTab), vee.ActionTab, 0, true},
		{keyEvent(vee.KeySpace), vee.ActionAddChar, ' ', true},
		{charEvent('x'), vee.ActionAddChar, 'x', true},
		{charEvent('q'), vee.ActionAddChar, 'q', true},
		{keyEvent(vee.KeyArrowLeft), vee.ActionMoveLeft, 0, true},
		{keyEvent(vee.KeyUnsupported), vee.ActionNone, 0, false},
	}
	for _, test := range tests {
		action, ok := c.Translate(test.event)
		if ok != test.ok || action.Kind != test.kind || action.Ch != test.ch {
			t.Errorf("Translate(%+v) = (%v, %q, %v), expected (%v, %q, %v)",
				test.event, action.Kind, action.Ch, ok, test.kind, test.ch, test.ok)
		}
	}
}

// a resize event only updates the cached size, it edits nothing
func TestResizeProducesNoAction(t *testing.T) {
	e, c := setup()
	err := c.ProcessEvent(&vee.Event{Type: vee.EventResize, Size: vee.Size{Rows: 24, Cols: 80}})
	if err != nil {
		t.Errorf("ProcessEvent failed on resize: %+v", err)
	}
	if c.GetMode() != vee.ModeNormal {
		t.Errorf("Resize changed the mode: %d", c.GetMode())
	}
	if text := string(e.Bytes()); text != "" {
		t.Errorf("Resize changed the buffer: '%s'", text)
	}
}

// type a little text, leave insert mode, and quit
func TestEditSession(t *testing.T) {
	e, c := setup()

	c.ProcessEvent(charEvent('i'))
	if c.GetMode() != vee.ModeInsert {
		t.Errorf("Expected insert mode, mode is %d", c.GetMode())
	}
	c.ProcessEvent(charEvent('h'))
	c.ProcessEvent(charEvent('i'))
	if text := e.Buffer.TextAfter(0, 0); text != "hi" {
		t.Errorf("Unexpected buffer content: '%s'", text)
	}
	if cursor := e.GetCursor(); cursor.Row != 0 || cursor.Col != 2 {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}

	c.ProcessEvent(keyEvent(vee.KeyEnter))
	if cursor := e.GetCursor(); cursor.Row != 1 || cursor.Col != 0 {
		t.Errorf("Unexpected cursor after enter: %+v", cursor)
	}
	if rowCount := e.Buffer.GetRowCount(); rowCount != 2 {
		t.Errorf("Unexpected row count after enter: %d", rowCount)
	}
	if text := e.Buffer.TextAfter(0, 0); text != "hi" {
		t.Errorf("First row changed after enter: '%s'", text)
	}

	c.ProcessEvent(keyEvent(vee.KeyBackspace2))
	if cursor := e.GetCursor(); cursor.Row != 0 || cursor.Col != 0 {
		t.Errorf("Unexpected cursor after backspace at col 0: %+v", cursor)
	}
	if text := e.Buffer.TextAfter(0, 0); text != "hi" {
		t.Errorf("Backspace at col 0 removed a character: '%s'", text)
	}

	c.ProcessEvent(keyEvent(vee.KeyEsc))
	if c.GetMode() != vee.ModeNormal {
		t.Errorf("Expected normal mode, mode is %d", c.GetMode())
	}

	// 'q' types a character in insert mode but quits in normal mode
	c.ProcessEvent(charEvent('q'))
	if c.IsRunning() {
		t.Errorf("Commander still running after quit")
	}
}

func TestDeleteCharInNormalMode(t *testing.T) {
	e, c := setup()
	c.Apply(vee.Action{Kind: vee.ActionModeToInsert})
	for _, ch := range "abc" {
		c.Apply(vee.Action{Kind: vee.ActionAddChar, Ch: ch})
	}
	c.Apply(vee.Action{Kind: vee.ActionModeToNormal})
	e.SetCursor(vee.Point{Row: 0, Col: 1})
	c.ProcessEvent(charEvent('d'))
	if text := e.Buffer.TextAfter(0, 0); text != "ac" {
		t.Errorf("Unexpected buffer content after delete: '%s'", text)
	}
	if cursor := e.GetCursor(); cursor.Col != 1 {
		t.Errorf("Delete moved the cursor: %+v", cursor)
	}
}

// drive an edit session through the lisp surface
func TestLispScripting(t *testing.T) {
	e, c := setup()
	c.ParseEval(`(insert-string "hello")`)
	c.ParseEval(`(newline)`)
	c.ParseEval(`(insert-string "world")`)
	c.ParseEval(`(backspace)`)
	if text := string(e.Bytes()); text != "hello\nworl" {
		t.Errorf("Unexpected buffer after script: '%s'", text)
	}
	if result := c.ParseEval(`(cursor-row)`); result != "1" {
		t.Errorf("Unexpected cursor-row result: '%s'", result)
	}
	if result := c.ParseEval(`(cursor-col)`); result != "4" {
		t.Errorf("Unexpected cursor-col result: '%s'", result)
	}
	if result := c.ParseEval(`(buffer-text)`); !strings.Contains(result, "worl") {
		t.Errorf("Unexpected buffer-text result: '%s'", result)
	}
}
