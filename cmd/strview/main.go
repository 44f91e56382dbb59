// strview is a command-line front end over the view library: one
// subcommand per search/scan primitive, plus an interactive REPL for
// exploring a haystack without re-invoking the binary for every query.
//
// Usage:
//
//	strview find <haystack> <needle> [--pos N]
//	strview rfind <haystack> <needle> [--pos N]
//	strview contains <haystack> <needle>
//	strview spanof <haystack> <set>
//	strview cspanof <haystack> <set>
//	strview tokenize <haystack> <delim> [--reverse]
//	strview repl <haystack>
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/SkeletOSS/str-view/internal/cmdutil"
	strview "github.com/SkeletOSS/str-view"
)

func main() {
	cmdutil.AtExit(func() {})
	if len(os.Args) < 2 {
		usage()
		cmdutil.SetExitStatus(2)
		cmdutil.Exit()
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "find":
		runFind(args, false)
	case "rfind":
		runFind(args, true)
	case "contains":
		runContains(args)
	case "spanof":
		runSpan(args, false)
	case "cspanof":
		runSpan(args, true)
	case "tokenize":
		runTokenize(args)
	case "repl":
		runRepl(args)
	case "help", "-h", "--help":
		usage()
	default:
		cmdutil.Errorf("strview: unknown command %q", cmd)
		usage()
	}
	cmdutil.Exit()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: strview <find|rfind|contains|spanof|cspanof|tokenize|repl> ...")
}

func runFind(args []string, reverse bool) {
	name := "find"
	if reverse {
		name = "rfind"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	pos := fs.Int("pos", -1, "search position (default: start of haystack for find, end for rfind)")
	if err := fs.Parse(args); err != nil {
		cmdutil.Fatalf(err, "parsing flags")
	}
	rest := fs.Args()
	if len(rest) != 2 {
		cmdutil.Errorf("%s: expected <haystack> <needle>", name)
		return
	}
	v := strview.FromString(rest[0])
	needle := strview.FromString(rest[1])

	var k int
	if reverse {
		if *pos < 0 {
			*pos = v.Len()
		}
		k = strview.RFind(v, *pos, needle)
	} else {
		if *pos < 0 {
			*pos = 0
		}
		k = strview.Find(v, *pos, needle)
	}
	fmt.Println(k)
}

func runContains(args []string) {
	if len(args) != 2 {
		cmdutil.Errorf("contains: expected <haystack> <needle>")
		return
	}
	v := strview.FromString(args[0])
	needle := strview.FromString(args[1])
	fmt.Println(strview.Contains(v, needle))
}

func runSpan(args []string, complement bool) {
	name := "spanof"
	if complement {
		name = "cspanof"
	}
	if len(args) != 2 {
		cmdutil.Errorf("%s: expected <haystack> <set>", name)
		return
	}
	v := strview.FromString(args[0])
	set := strview.FromString(args[1])
	if complement {
		fmt.Println(strview.FindFirstOf(v, set))
	} else {
		fmt.Println(strview.FindFirstNotOf(v, set))
	}
}

func runTokenize(args []string) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	reverse := fs.Bool("reverse", false, "tokenize from the end backward")
	if err := fs.Parse(args); err != nil {
		cmdutil.Fatalf(err, "parsing flags")
	}
	rest := fs.Args()
	if len(rest) != 2 {
		cmdutil.Errorf("tokenize: expected <haystack> <delim>")
		return
	}
	v := strview.FromString(rest[0])
	delim := strview.FromString(rest[1])

	if *reverse {
		rt := strview.FromDelimiterReverse(v, delim)
		for {
			field, ok := rt.Next()
			if !ok {
				break
			}
			fmt.Println(field.String())
		}
		return
	}
	t := strview.FromDelimiter(v, delim)
	for {
		field, ok := t.Next()
		if !ok {
			break
		}
		fmt.Println(field.String())
	}
}
