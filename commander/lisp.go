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
	"errors"

	"github.com/steelseries/golisp"

	vee "github.com/vee-editor/vee/types"
)

// Scripts drive the most recently created commander.
var lispCommander *Commander

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("TAB-WIDTH"),
		golisp.IntegerWithValue(int64(vee.TabWidth)))
	golisp.MakePrimitiveFunction("insert-string", "1", insertStringImpl)
	golisp.MakePrimitiveFunction("newline", "0", newlineImpl)
	golisp.MakePrimitiveFunction("backspace", "0", backspaceImpl)
	golisp.MakePrimitiveFunction("delete-char", "0", deleteCharImpl)
	golisp.MakePrimitiveFunction("move", "1", moveImpl)
	golisp.MakePrimitiveFunction("insert-mode", "0", insertModeImpl)
	golisp.MakePrimitiveFunction("normal-mode", "0", normalModeImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", bufferTextImpl)
	golisp.MakePrimitiveFunction("cursor-row", "0", cursorRowImpl)
	golisp.MakePrimitiveFunction("cursor-col", "0", cursorColImpl)
}

func insertStringImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-string requires a string argument")
	}
	for _, c := range golisp.StringValue(val) {
		lispCommander.Apply(vee.Action{Kind: vee.ActionAddChar, Ch: c})
	}
	return nil, nil
}

func newlineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.Apply(vee.Action{Kind: vee.ActionNewLine})
	return nil, nil
}

func backspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.Apply(vee.Action{Kind: vee.ActionBackspace})
	return nil, nil
}

func deleteCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.Apply(vee.Action{Kind: vee.ActionDeleteChar})
	return nil, nil
}

func moveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("move requires a direction string argument")
	}
	switch golisp.StringValue(val) {
	case "up":
		lispCommander.Apply(vee.Action{Kind: vee.ActionMoveUp})
	case "down":
		lispCommander.Apply(vee.Action{Kind: vee.ActionMoveDown})
	case "left":
		lispCommander.Apply(vee.Action{Kind: vee.ActionMoveLeft})
	case "right":
		lispCommander.Apply(vee.Action{Kind: vee.ActionMoveRight})
	default:
		return nil, errors.New("move direction must be up, down, left, or right")
	}
	return nil, nil
}

func insertModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.Apply(vee.Action{Kind: vee.ActionModeToInsert})
	return nil, nil
}

func normalModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	lispCommander.Apply(vee.Action{Kind: vee.ActionModeToNormal})
	return nil, nil
}

func bufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(string(lispCommander.editor.Bytes())), nil
}

func cursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.GetCursor().Row)), nil
}

func cursorColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispCommander.editor.GetCursor().Col)), nil
}

// ParseEval evaluates a lisp expression and returns its printed result.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile runs a lisp script against the editor.
func (c *Commander) ParseEvalFile(path string) error {
	_, err := golisp.ProcessFile(path)
	return err
}
