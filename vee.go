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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vee-editor/vee/commander"
	"github.com/vee-editor/vee/editor"
	"github.com/vee-editor/vee/screen"
)

func main() {
	os.Exit(run())
}

func run() int {
	var script string

	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--eval": // run a script against the editor and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				fmt.Fprintln(os.Stderr, "No file specified for --eval option")
				return 1
			}
		}
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if script != "" {
		// Run a script headlessly and print the resulting buffer.
		if err := c.ParseEvalFile(script); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		fmt.Println(string(e.Bytes()))
		return 0
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	defer s.Close()

	// Open a log file so diagnostics don't corrupt the display.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.veelog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
	return 0
}
