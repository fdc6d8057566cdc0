// Copyright (C) 2024 NBT Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command nbtdump prints the contents of one or more NBT documents.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/nbtgo/nbt/nbt"
)

var (
	explicit = flag.Bool("explicit", false, "parse with the explicit root policy instead of implicit-root")
	auto     = flag.Bool("auto", true, "autodetect gzip/zlib framing before parsing")
	asJSON   = flag.Bool("json", false, "print the parsed tree as JSON instead of indented text")
)

func main() {
	flag.Parse()
	o := bufio.NewWriter(os.Stdout)
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := dump(o, arg); err != nil {
			fmt.Fprintf(os.Stderr, "input %s: %s\n", arg, err)
			os.Exit(1)
		}
	}
	if err := o.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(o *bufio.Writer, arg string) error {
	var in *os.File
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var root nbt.Node
	var err error
	switch {
	case *explicit:
		root, err = nbt.ParseExplicit(in)
	case *auto:
		root, err = nbt.ParseAuto(in)
	default:
		root, err = nbt.Parse(in)
	}
	if err != nil {
		return err
	}
	if *asJSON {
		b, err := json.Marshal(root)
		if err != nil {
			return err
		}
		_, err = o.Write(append(b, '\n'))
		return err
	}
	fmt.Fprintln(o, root.String())
	return nil
}
