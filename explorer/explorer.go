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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/cp15/curated"
	"github.com/jetsetilly/cp15/hardware/cp15"
	"github.com/jetsetilly/cp15/hardware/cp15/emulation"
	"github.com/jetsetilly/cp15/terminal/easyterm/ansi"
	"github.com/xlab/treeprint"
)

// Explorer presents the register table for a core and gives access to an
// emulated register file for that core.
type Explorer struct {
	out    io.Writer
	styled bool

	// maximum width of a LIST row. zero means unlimited
	width int

	core cp15.Core
	regs *emulation.RegisterFile
	acc  *cp15.Accessor
}

// NewExplorer is the preferred method of initialisation for the Explorer type.
func NewExplorer(core cp15.Core, out io.Writer) *Explorer {
	ex := &Explorer{out: out}
	ex.SetCore(core)
	return ex
}

// SetStyled turns ANSI styling of output on or off. Styling should only be
// used when the output is a terminal.
func (ex *Explorer) SetStyled(styled bool) {
	ex.styled = styled
}

// SetWidth limits the width of rows printed by List. Rows longer than the
// width are truncated. A width of zero or less removes the limit.
func (ex *Explorer) SetWidth(width int) {
	ex.width = width
}

// Core returns the core being explored.
func (ex *Explorer) Core() cp15.Core {
	return ex.core
}

// SetCore changes the core being explored. The emulated register file is
// replaced with one for the new core.
func (ex *Explorer) SetCore(core cp15.Core) {
	ex.core = core
	ex.regs = emulation.NewRegisterFile(core)
	ex.regs.SetLogging(true)
	ex.acc = cp15.NewAccessor(core, ex.regs)
}

func (ex *Explorer) print(pattern string, args ...any) {
	fmt.Fprintf(ex.out, pattern, args...)
	fmt.Fprintln(ex.out)
}

func (ex *Explorer) style(pen string, s string) string {
	if !ex.styled {
		return s
	}
	if p, ok := ansi.PenStyles[pen]; ok {
		return p + s + ansi.NormalPen
	}
	if p, ok := ansi.Pens[pen]; ok {
		return p + s + ansi.NormalPen
	}
	return s
}

// selection returns every register supported by the core. The list is
// restricted to a single group if group is not empty
func (ex *Explorer) selection(group string) ([]cp15.Descriptor, error) {
	var l []cp15.Descriptor
	if group == "" {
		l = cp15.All()
	} else {
		g, ok := cp15.GroupByName(group)
		if !ok {
			return nil, curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s is not a register group", group))
		}
		l = cp15.InGroup(g)
	}

	s := l[:0]
	for _, d := range l {
		if ex.core.Supports(d) {
			s = append(s, d)
		}
	}
	return s, nil
}

// List every register supported by the core. The list is restricted to a
// single group if group is not empty.
func (ex *Explorer) List(group string) error {
	l, err := ex.selection(group)
	if err != nil {
		return err
	}

	heading := cp15.Group(-1)
	for _, d := range l {
		if d.Group != heading {
			heading = d.Group
			ex.print("%s", ex.style("bold", heading.String()))
		}

		notes := []string{}
		if d.UserAccess != cp15.NoAccess {
			notes = append(notes, fmt.Sprintf("user %s", d.UserAccess))
		}
		if d.Selector != "" {
			notes = append(notes, fmt.Sprintf("via %s", d.Selector))
		}
		if d.AliasOf != "" {
			notes = append(notes, fmt.Sprintf("alias %s", d.AliasOf))
		}

		ln := fmt.Sprintf("  %-12s %-24s %s  %s", d.Name, d.Address(), d.Access, strings.Join(notes, ", "))
		if ex.width > 0 && len(ln) > ex.width {
			ln = ln[:ex.width]
		}
		ex.print("%s", strings.TrimRight(ln, " "))
	}

	return nil
}

// Tree prints the registers supported by the core as a tree of groups. The
// tree is restricted to a single group if group is not empty.
func (ex *Explorer) Tree(group string) error {
	l, err := ex.selection(group)
	if err != nil {
		return err
	}

	tree := treeprint.New()
	tree.SetValue(ex.core.Name)

	var branch treeprint.Tree
	heading := cp15.Group(-1)
	for _, d := range l {
		if d.Group != heading {
			heading = d.Group
			branch = tree.AddBranch(heading.String())
		}
		branch.AddNode(fmt.Sprintf("%s  %s", d.Name, d.Address()))
	}

	io.WriteString(ex.out, tree.String())

	return nil
}

// Lookup prints a detailed description of the named register.
func (ex *Explorer) Lookup(name string) error {
	d, ok := cp15.ByName(name)
	if !ok {
		return curated.Errorf(cp15.UnsupportedRegister, fmt.Sprintf("%s is not recognised", name))
	}

	ex.print("%s", d.Summary())
	ex.print("  group: %s", d.Group)
	if d.UserAccess != cp15.NoAccess {
		ex.print("  user access: %s", d.UserAccess)
	}
	if d.Note != "" {
		ex.print("  note: %s", d.Note)
	}
	if b, ok := d.BarrierInstruction(); ok {
		ex.print("  equivalent: %s", b)
	}
	if err := ex.core.Check(d); err != nil {
		ex.print("  %s", ex.style("yellow", fmt.Sprintf("not implemented by %s", ex.core.Name)))
	}

	return nil
}

// EncodeOptions control the instruction produced by Encode().
type EncodeOptions struct {
	Rt        cp15.Register
	Write     bool
	Thumb     bool
	Condition cp15.Condition
}

// Encode prints the machine encoding and assembler text of the instruction
// that accesses the named register.
func (ex *Explorer) Encode(name string, opts EncodeOptions) error {
	d, err := ex.core.Resolve(name)
	if err != nil {
		return err
	}

	dir := cp15.MRC
	if opts.Write {
		dir = cp15.MCR
		if !d.Access.Writable() {
			return curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s cannot be written", d.Name))
		}
	} else if !d.Access.Readable() {
		return curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s cannot be read", d.Name))
	}

	t := d.Bind(opts.Rt)

	if opts.Thumb {
		if opts.Condition != cp15.AL {
			return curated.Errorf(cp15.InvalidParameter, "thumb encoding is unconditional")
		}
		hw1, hw2, err := t.EncodeThumb(dir)
		if err != nil {
			return err
		}
		ex.print("%04x %04x  %s", hw1, hw2, t.Assembly(dir, cp15.AL))
		return nil
	}

	w, err := t.EncodeARM(dir, opts.Condition)
	if err != nil {
		return err
	}
	ex.print("%08x  %s", w, t.Assembly(dir, opts.Condition))

	return nil
}

func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, bits)
	if err != nil {
		return 0, curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s is not a %d bit hex value", s, bits))
	}
	return v, nil
}

// Decode prints the register named by an encoded MRC or MCR instruction. An
// ARM instruction is a single word. A Thumb instruction is either a single
// word or two halfwords.
func (ex *Explorer) Decode(args []string, thumb bool) error {
	var ins cp15.Instruction
	var err error

	switch {
	case thumb && len(args) == 2:
		var hw1, hw2 uint64
		if hw1, err = parseHex(args[0], 16); err != nil {
			return err
		}
		if hw2, err = parseHex(args[1], 16); err != nil {
			return err
		}
		ins, err = cp15.DecodeThumb(uint16(hw1), uint16(hw2))
	case len(args) == 1:
		var w uint64
		if w, err = parseHex(args[0], 32); err != nil {
			return err
		}
		if thumb {
			ins, err = cp15.DecodeThumb(uint16(w>>16), uint16(w))
		} else {
			ins, err = cp15.DecodeARM(uint32(w))
		}
	default:
		return curated.Errorf(cp15.InvalidParameter, "wrong number of values to decode")
	}
	if err != nil {
		return err
	}

	if len(ins.Descriptors) == 0 {
		ex.print("%s  %s", ins, ex.style("yellow", "unknown register"))
		return nil
	}
	ex.print("%s  %s", ins, ex.style("bold", ins.Names()))

	return nil
}

// Read the named register from the emulated register file.
func (ex *Explorer) Read(name string) error {
	d, ok := cp15.ByName(name)
	if !ok {
		return curated.Errorf(cp15.UnsupportedRegister, fmt.Sprintf("%s is not recognised", name))
	}
	v, err := ex.acc.Read(d)
	if err != nil {
		return err
	}
	ex.print("%s = %08x", d.Name, v)
	return nil
}

// Write a value to the named register of the emulated register file.
func (ex *Explorer) Write(name string, v uint32) error {
	d, ok := cp15.ByName(name)
	if !ok {
		return curated.Errorf(cp15.UnsupportedRegister, fmt.Sprintf("%s is not recognised", name))
	}
	return ex.acc.Write(d, v)
}

// Select writes the selector of the named register and then reads the
// register.
func (ex *Explorer) Select(name string, selector uint32) error {
	d, ok := cp15.ByName(name)
	if !ok {
		return curated.Errorf(cp15.UnsupportedRegister, fmt.Sprintf("%s is not recognised", name))
	}
	v, err := ex.acc.Select(d, selector)
	if err != nil {
		return err
	}
	ex.print("%s[%x] = %08x", d.Name, selector, v)
	return nil
}

// Operations prints the number of times the named operation has been
// performed on the emulated register file.
func (ex *Explorer) Operations(name string) error {
	d, ok := cp15.ByName(name)
	if !ok {
		return curated.Errorf(cp15.UnsupportedRegister, fmt.Sprintf("%s is not recognised", name))
	}
	if !d.IsOperation() {
		return curated.Errorf(cp15.InvalidParameter, fmt.Sprintf("%s is not an operation", d.Name))
	}
	ex.print("%s x%d", d.Name, ex.regs.Operations(d.Name))
	return nil
}

// State prints the value of every register in the emulated register file.
func (ex *Explorer) State() {
	io.WriteString(ex.out, ex.regs.String())
}
