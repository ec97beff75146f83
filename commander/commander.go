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
	"fmt"

	vee "github.com/vee-editor/vee/types"
)

// The Commander converts user input into commands for the Editor.
// It owns the editing mode: which actions an event translates to
// depends on the mode, and mode switches are themselves actions.
type Commander struct {
	editor  vee.Editor
	mode    int    // editor mode
	debug   bool   // debug mode displays information about events (key codes, etc)
	message string // status message
}

func NewCommander(e vee.Editor) *Commander {
	c := &Commander{editor: e, mode: vee.ModeNormal}
	lispCommander = c
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != vee.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) ProcessEvent(event *vee.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case vee.EventKey:
		if action, ok := c.Translate(event); ok {
			c.Apply(action)
		}
		return nil
	case vee.EventResize:
		c.editor.SetSize(event.Size)
		return nil
	default:
		return nil
	}
}

// Translate maps a key event to an action under the current mode.
// Events with no binding translate to nothing.
func (c *Commander) Translate(event *vee.Event) (vee.Action, bool) {
	// arrow keys move the cursor in every mode
	switch event.Key {
	case vee.KeyArrowUp:
		return vee.Action{Kind: vee.ActionMoveUp}, true
	case vee.KeyArrowDown:
		return vee.Action{Kind: vee.ActionMoveDown}, true
	case vee.KeyArrowLeft:
		return vee.Action{Kind: vee.ActionMoveLeft}, true
	case vee.KeyArrowRight:
		return vee.Action{Kind: vee.ActionMoveRight}, true
	}
	switch c.mode {
	case vee.ModeNormal:
		return c.translateNormalMode(event)
	case vee.ModeInsert:
		return c.translateInsertMode(event)
	}
	return vee.Action{}, false
}

func (c *Commander) translateNormalMode(event *vee.Event) (vee.Action, bool) {
	if event.Key == vee.KeyDelete {
		return vee.Action{Kind: vee.ActionDeleteChar}, true
	}
	switch event.Ch {
	case 'q':
		return vee.Action{Kind: vee.ActionExit}, true
	case 'i':
		return vee.Action{Kind: vee.ActionModeToInsert}, true
	case 'd':
		return vee.Action{Kind: vee.ActionDeleteChar}, true
	}
	return vee.Action{}, false
}

func (c *Commander) translateInsertMode(event *vee.Event) (vee.Action, bool) {
	switch event.Key {
	case vee.KeyEsc:
		return vee.Action{Kind: vee.ActionModeToNormal}, true
	case vee.KeyBackspace2:
		return vee.Action{Kind: vee.ActionBackspace}, true
	case vee.KeyEnter:
		return vee.Action{Kind: vee.ActionNewLine}, true
	case vee.KeyTab:
		return vee.Action{Kind: vee.ActionTab}, true
	case vee.KeySpace:
		return vee.Action{Kind: vee.ActionAddChar, Ch: ' '}, true
	}
	if event.Ch != 0 {
		if event.Ch == 'i' && event.Mod&vee.ModAlt != 0 {
			return vee.Action{Kind: vee.ActionModeToNormal}, true
		}
		return vee.Action{Kind: vee.ActionAddChar, Ch: event.Ch}, true
	}
	return vee.Action{}, false
}

// Apply performs one action, mutating the editor or the mode.
func (c *Commander) Apply(action vee.Action) {
	e := c.editor
	switch action.Kind {
	case vee.ActionMoveUp:
		e.MoveCursor(vee.MoveUp)
	case vee.ActionMoveDown:
		e.MoveCursor(vee.MoveDown)
	case vee.ActionMoveLeft:
		e.MoveCursor(vee.MoveLeft)
	case vee.ActionMoveRight:
		e.MoveCursor(vee.MoveRight)
	case vee.ActionNewLine:
		e.InsertNewline()
	case vee.ActionBackspace:
		e.BackspaceChar()
	case vee.ActionModeToNormal:
		c.mode = vee.ModeNormal
	case vee.ActionModeToInsert:
		c.mode = vee.ModeInsert
	case vee.ActionAddChar:
		e.InsertChar(action.Ch)
	case vee.ActionTab:
		e.InsertTab()
	case vee.ActionDeleteChar:
		e.DeleteChar()
	case vee.ActionExit:
		c.mode = vee.ModeQuit
	case vee.ActionNone:
	}
}
