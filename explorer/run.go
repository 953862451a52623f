// This file is part of cp15.
//
// cp15 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cp15 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cp15.  If not, see <https://www.gnu.org/licenses/>.

package explorer

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/jetsetilly/cp15/logger"
)

// Config for the interactive session.
type Config struct {
	// file in which command history is kept. history is not saved if the
	// string is empty
	HistoryFile string

	// maximum number of history entries
	HistoryLimit int
}

// Run an interactive session. Commands are read from the terminal until QUIT
// or the end of input.
func (ex *Explorer) Run(cfg Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            fmt.Sprintf("%s> ", ex.core.Name),
		HistoryFile:       cfg.HistoryFile,
		HistoryLimit:      cfg.HistoryLimit,
		HistorySearchFold: true,
		AutoComplete:      ex.Completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		Stdout:            ex.out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// output goes through readline so that it does not interfere with the
	// prompt
	out := ex.out
	ex.out = rl.Stdout()
	defer func() {
		ex.out = out
	}()

	// errors are written with the red pen when styled
	var errOut io.Writer = ex.out
	if ex.styled {
		errOut = logger.NewColorizer(errOut)
	}

	ex.print("%s. type HELP for a list of commands", ex.core)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue // for loop
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		quit, err := ex.Exec(line)
		if err != nil {
			fmt.Fprintf(errOut, "* %v\n", err)
		}
		if quit {
			return nil
		}

		rl.SetPrompt(fmt.Sprintf("%s> ", ex.core.Name))
	}
}
