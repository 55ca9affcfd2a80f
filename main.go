package main

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
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/cmd"
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners/apriori"
)

func init() {
	cmd.UsageMessage = "apriori --help"
	cmd.ExtendedMessage = `
apriori - mine frequent itemsets and association rules

$ apriori -o <path> --support=<int> --confidence=<float> [Global Options] \
    <input-path> \
    [<reporter> [Reporter Options]]

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the the documentations for Reporters for details.


Global Options
    -h, --help                view this message
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<int>           minimum support of itemsets (required)
                              an absolute transaction count, not a fraction
    --confidence=<float>      minimum confidence of rules in [0,1]
                              (default 0, every rule)
    --candidates=<name>       candidate generation strategy (default prefix)
                              prefix: join on shared k-2 prefix, prune
                                      candidates with infrequent subsets
                              naive:  join all pairs, no pruning
    --no-narrow               keep every transaction in the working set
                              instead of dropping the ones which support
                              no current level candidate
    --workers=<int>           parallelism for counting and rule derivation
                              (default 1, -1 means one per cpu)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location


Input Format
    Each line is a transaction. The items are integers and are space
    separated. An empty line is an empty transaction.

    Example file:
        10 1 5 7
        213 2 5 1
        23 1 4 5 7
        3 4 1


Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the frequent itemsets and level summaries
    file                      write the itemsets to a file in the output dir
    count                     write the itemset and level totals to a file

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the output
                              directory to write the itemsets
        -l, levels=<name>     the name of the file in the output directory to
                              write the per level summaries

    count Options
        -f, filename=<name>   the name of the file in the output directory to
                              write the totals

    Examples

        $ apriori -o /tmp/apriori --support=1000 --confidence=.75 \
            ./data/transactions.dat.gz

        $ apriori -o /tmp/apriori --support=2 --confidence=.6 \
            ./data/transactions.dat \
            chain log count

The association rules are always written to the 'rules.assoc' file in the
output directory as: antecedent -> consequent : support : confidence.
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"reporters",
			"support=",
			"confidence=",
			"candidates=",
			"no-narrow",
			"workers=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments try:")
		fmt.Fprintf(os.Stderr, "$ %v %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	support := -1
	confidence := 0.0
	candidates := "prefix"
	narrow := true
	workers := 0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			support = cmd.ParseInt(oa.Arg())
		case "--confidence":
			confidence = cmd.ParseFloat(oa.Arg())
		case "--candidates":
			candidates = oa.Arg()
		case "--no-narrow":
			narrow = false
		case "--workers":
			workers = cmd.ParseInt(oa.Arg())
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support < 0 {
		fmt.Fprintf(os.Stderr, "You must supply a support >= 0 (--support)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if confidence < 0 || confidence > 1 {
		fmt.Fprintf(os.Stderr, "Confidence must be in [0,1], got %v\n", confidence)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	strategy, err := apriori.ParseStrategy(candidates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintf(os.Stderr, "strategies: prefix, naive\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:       cache,
		Output:      output,
		Support:     support,
		Confidence:  confidence,
		Parallelism: workers,
	}
	return cmd.Main(args, conf, strategy, narrow)
}
