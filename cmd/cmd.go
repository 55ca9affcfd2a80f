package cmd

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/miners/apriori"
	"github.com/timtadh/apriori/miners/reporters"
	"github.com/timtadh/apriori/miners/rules"
	"github.com/timtadh/apriori/types/itemset"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"version":  2,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"baddir":   6,
	"badfile":  7,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func Input(input_path string) (reader io.Reader, closeall func(), err error) {
	stat, err := os.Stat(input_path)
	if err != nil {
		return nil, nil, err
	}
	if stat.IsDir() {
		return InputDir(input_path)
	} else {
		return InputFile(input_path)
	}
}

func InputFile(input_path string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(input_path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(input_path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

func InputDir(input_dir string) (reader io.Reader, closeall func(), err error) {
	var readers []io.Reader
	var closers []func()
	dir, err := ioutil.ReadDir(input_dir)
	if err != nil {
		return nil, nil, err
	}
	for _, info := range dir {
		if info.IsDir() {
			continue
		}
		creader, closer, err := InputFile(path.Join(input_dir, info.Name()))
		if err != nil {
			for _, closer := range closers {
				closer()
			}
			return nil, nil, err
		}
		readers = append(readers, creader)
		closers = append(closers, closer)
	}
	reader = io.MultiReader(readers...)
	return reader, func() {
		for _, closer := range closers {
			closer()
		}
	}, nil
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func AssertDir(dir string) string {
	dir = path.Clean(dir)
	fi, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			fmt.Fprintf(os.Stderr, err.Error())
			Usage(ErrorCodes["baddir"])
		}
		return dir
	} else if err != nil {
		fmt.Fprintf(os.Stderr, err.Error())
		Usage(ErrorCodes["baddir"])
	}
	if !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was not a directory, %s", dir)
		Usage(ErrorCodes["baddir"])
	}
	return dir
}

func EmptyDir(dir string) string {
	dir = path.Clean(dir)
	_, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			Usage(ErrorCodes["baddir"])
		}
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		Usage(ErrorCodes["baddir"])
	} else {
		// something already exists lets delete it
		err := os.RemoveAll(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			Usage(ErrorCodes["baddir"])
		}
		err = os.MkdirAll(dir, 0775)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			Usage(ErrorCodes["baddir"])
		}
	}
	return dir
}

func AssertFileOrDirExists(fname string) string {
	fname = path.Clean(fname)
	_, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File '%s' does not exist!\n", fname)
		Usage(ErrorCodes["badfile"])
	} else if err != nil {
		fmt.Fprintf(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintf(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

type Reporter func(map[string]Reporter, []string, itemset.Formatter, *config.Config) (miners.Reporter, []string)

func logReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(fmtr, level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:l:",
		[]string{
			"help",
			"patterns=",
			"levels=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	patterns := "patterns"
	levels := "levels.txt"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--patterns":
			patterns = oa.Arg()
		case "-l", "--levels":
			levels = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(conf, fmtr, patterns, levels)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return fr, args
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "count.txt"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	cr, err := reporters.NewCount(conf, filename)
	if err != nil {
		errors.Logf("ERROR", "Error creating count reporter '%v'\n", err)
		Usage(ErrorCodes["opts"])
	}
	return cr, args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	rptrs := make([]miners.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		if _, has := reports[args[0]]; !has {
			errors.Logf("ERROR", "Unknown reporter '%v'\n", args[0])
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range reports {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			Usage(ErrorCodes["opts"])
		}
		var rptr miners.Reporter
		rptr, args = reports[args[0]](reports, args[1:], fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

var Reporters map[string]Reporter = map[string]Reporter{
	"log":   logReporter,
	"file":  fileReporter,
	"count": countReporter,
	"chain": chainReporter,
}

func Main(args []string, conf *config.Config, strategy apriori.Strategy, narrow bool) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply an input path\n")
		Usage(ErrorCodes["opts"])
	}
	inputPath := AssertFileOrDirExists(args[0])
	args = args[1:]

	getInput := func() (io.Reader, func(), error) {
		return Input(inputPath)
	}

	fmtr := itemset.Formatter{}
	var rptr miners.Reporter
	if len(args) == 0 {
		rptr, _ = Reporters["chain"](Reporters, []string{"log", "file"}, fmtr, conf)
	} else if _, has := Reporters[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", args[0])
		fmt.Fprintln(os.Stderr, "Reporters:")
		for k := range Reporters {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	} else {
		rptr, args = Reporters[args[0]](Reporters, args[1:], fmtr, conf)
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unconsumed commandline options: '%v'\n", strings.Join(args, " "))
		Usage(ErrorCodes["opts"])
	}

	errors.Logf("INFO", "Got configuration about to load dataset")
	loader := itemset.NewIntLoader(conf)
	dt, err := loader.Load(getInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	errors.Logf("INFO", "loaded %v transactions, about to start mining", len(dt.Txs))
	miner := apriori.NewMiner(conf, strategy, narrow)
	table, mineErr := miner.Mine(dt, rptr)

	code := 0
	if mineErr == nil {
		errors.Logf("INFO", "mined %v frequent itemsets, deriving rules", table.Size())
		if err := writeRules(conf, table); err != nil {
			fmt.Fprintf(os.Stderr, "There was error during rule derivation\n")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			code++
		}
	}
	if e := miner.Close(); e != nil {
		errors.Logf("ERROR", "error closing %v", e)
		code++
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		code++
	} else {
		errors.Logf("INFO", "Done!")
	}
	return code
}

func writeRules(conf *config.Config, table *itemset.SupportTable) error {
	gen := rules.NewGenerator(conf)
	rs, err := gen.Generate(table)
	if err != nil {
		return err
	}
	f, err := os.Create(conf.OutputFile("rules.assoc"))
	if err != nil {
		return err
	}
	for _, r := range rs {
		_, err := fmt.Fprintln(f, r)
		if err != nil {
			f.Close()
			return err
		}
	}
	errors.Logf("INFO", "emitted %v rules at confidence >= %v", len(rs), conf.Confidence)
	return f.Close()
}
