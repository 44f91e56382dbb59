package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/SkeletOSS/str-view/internal/cmdutil"
	strview "github.com/SkeletOSS/str-view"
)

const historyFile = ".strview_history"

// runRepl opens an interactive session over a single fixed haystack,
// letting a user issue repeated find/rfind/contains/spanof/cspanof/
// tokenize commands without re-parsing the haystack each time.
func runRepl(args []string) {
	if len(args) != 1 {
		cmdutil.Errorf("repl: expected <haystack>")
		return
	}
	haystack := strview.FromString(args[0])

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("strview repl — haystack %q (%d bytes). Type 'help' for commands, 'exit' to quit.\n",
		args[0], haystack.Len())

	for {
		text, err := line.Prompt("strview> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				break
			}
			cmdutil.Errorf("reading input: %v", err)
			break
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)

		if !dispatchReplLine(haystack, text) {
			break
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func dispatchReplLine(haystack strview.View, text string) bool {
	fields := strings.Fields(text)
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "exit", "quit", "q":
		return false
	case "help":
		replHelp()
	case "find", "rfind":
		if len(rest) != 1 {
			fmt.Println("usage:", cmd, "<needle>")
			return true
		}
		needle := strview.FromString(rest[0])
		if cmd == "find" {
			fmt.Println(strview.Find(haystack, 0, needle))
		} else {
			fmt.Println(strview.RFind(haystack, haystack.Len(), needle))
		}
	case "contains":
		if len(rest) != 1 {
			fmt.Println("usage: contains <needle>")
			return true
		}
		fmt.Println(strview.Contains(haystack, strview.FromString(rest[0])))
	case "spanof":
		if len(rest) != 1 {
			fmt.Println("usage: spanof <set>")
			return true
		}
		fmt.Println(strview.FindFirstNotOf(haystack, strview.FromString(rest[0])))
	case "cspanof":
		if len(rest) != 1 {
			fmt.Println("usage: cspanof <set>")
			return true
		}
		fmt.Println(strview.FindFirstOf(haystack, strview.FromString(rest[0])))
	case "tokenize":
		if len(rest) != 1 {
			fmt.Println("usage: tokenize <delim>")
			return true
		}
		t := strview.FromDelimiter(haystack, strview.FromString(rest[0]))
		for i := 0; ; i++ {
			field, ok := t.Next()
			if !ok {
				break
			}
			fmt.Printf("%d: %q\n", i, field.String())
		}
	case "substr":
		if len(rest) != 2 {
			fmt.Println("usage: substr <pos> <count>")
			return true
		}
		pos, err1 := strconv.Atoi(rest[0])
		count, err2 := strconv.Atoi(rest[1])
		if err1 != nil || err2 != nil {
			fmt.Println("substr: pos and count must be integers")
			return true
		}
		fmt.Printf("%q\n", strview.Substr(haystack, pos, count).String())
	default:
		fmt.Printf("unknown command %q; type 'help'\n", cmd)
	}
	return true
}

func replHelp() {
	fmt.Println(`commands:
  find <needle>
  rfind <needle>
  contains <needle>
  spanof <set>
  cspanof <set>
  tokenize <delim>
  substr <pos> <count>
  exit / quit / q`)
}
