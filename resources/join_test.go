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

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cp15/resources"
	"github.com/jetsetilly/cp15/test"
)

func TestJoinPath(t *testing.T) {
	t.Setenv(resources.HomeEnv, "")

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	p, err := resources.JoinPath("preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".cp15", "preferences"))

	// the directory has been created but not the file
	_, err = os.Stat(".cp15")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// sub-directories are created as required
	p, err = resources.JoinPath("explore", "history")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".cp15", "explore", "history"))
	_, err = os.Stat(filepath.Dir(p))
	test.ExpectSuccess(t, err)

	// the base path is not added twice
	p, err = resources.JoinPath(".cp15", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".cp15", "preferences"))
}

func TestHomeEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv(resources.HomeEnv, home)

	p, err := resources.JoinPath("explorer", "history")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(home, "explorer", "history"))
	_, err = os.Stat(filepath.Dir(p))
	test.ExpectSuccess(t, err)

	// a change to the environment is seen by the next call
	other := t.TempDir()
	t.Setenv(resources.HomeEnv, other)
	p, err = resources.JoinPath("explorer", "history")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(other, "explorer", "history"))
}
