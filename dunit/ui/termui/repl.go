package termui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/displayunit"
)

// LineInterpreter evaluates statements typed into a REPL. Lines which are not
// REPL administration commands are handed to the interpreter.
type LineInterpreter interface {
	InterpretLine(string)
}

// REPL is a terminal read-eval-print loop, offering line editing, history and
// tab completion.
type REPL struct {
	Interpreter LineInterpreter // evaluates statements
	Helper      func(io.Writer) // prints help for statements, may be nil
	rl          *readline.Instance
	stdout      io.Writer
	stderr      io.Writer
	toolname    string
	version     string
	vimode      bool
}

// Completions maps statement keywords to completions for their first argument.
type Completions map[string][]string

// NewREPL creates a REPL for a tool. Statement keywords and their arguments
// are offered for tab completion.
func NewREPL(toolname, version string, completions Completions) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              defaultPrompt(toolname),
		HistoryFile:         filepath.Join(os.TempDir(), toolname+"-repl-history.tmp"),
		AutoComplete:        completer(completions),
		InterruptPrompt:     "^C",
		EOFPrompt:           "bye",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &REPL{
		rl:       rl,
		stdout:   rl.Stdout(),
		stderr:   rl.Stderr(),
		toolname: toolname,
		version:  version,
	}, nil
}

func defaultPrompt(toolname string) string {
	return prtxt.FgGreen.Sprintf("%s> ", toolname)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *REPL) Outputs() (io.Writer, io.Writer) {
	return repl.stdout, repl.stderr
}

// Run reads and evaluates lines until the user quits. If exit is set, the
// application is terminated afterwards.
func (repl *REPL) Run(exit bool) {
	defer repl.rl.Close()
	fmt.Fprintf(repl.stderr, "Welcome to %s [V%s], type 'help' for help\n", repl.toolname, repl.version)
	for {
		line, err := repl.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if quit := repl.dispatch(strings.TrimSpace(line)); quit {
			break
		}
	}
	if exit {
		displayunit.Exit(0)
	}
}

// dispatch executes an administration command or hands the line to the
// interpreter. It returns true if the REPL should quit.
func (repl *REPL) dispatch(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	for _, cmd := range adminCommands() {
		if cmd.name == words[0] {
			return cmd.run(repl, words[1:])
		}
	}
	tracer().Debugf("interpreting %q", line)
	if repl.Interpreter != nil {
		repl.Interpreter.InterpretLine(line)
	}
	return false
}

// --- Administration commands -----------------------------------------------

type adminCommand struct {
	name, args, help string
	run              func(*REPL, []string) bool
}

func adminCommands() []adminCommand {
	return []adminCommand{
		{"help", "", "print this message", (*REPL).help},
		{"bye", "", "quit", (*REPL).bye},
		{"mode", "[vi|emacs]", "display or set the editing mode", (*REPL).mode},
		{"setprompt", "[prompt]", "set the prompt, or reset it", (*REPL).setPrompt},
	}
}

func (repl *REPL) help(args []string) bool {
	fmt.Fprintf(repl.stderr, "%s administration commands:\n\n", repl.toolname)
	for _, cmd := range adminCommands() {
		fmt.Fprintf(repl.stderr, "  %-26s : %s\n", strings.TrimSpace(cmd.name+" "+cmd.args), cmd.help)
	}
	if repl.Helper != nil {
		repl.Helper(repl.stderr)
	}
	return false
}

func (repl *REPL) bye(args []string) bool {
	io.WriteString(repl.stderr, "> goodbye!\n")
	return true
}

func (repl *REPL) mode(args []string) bool {
	if len(args) > 0 && (args[0] == "vi" || args[0] == "emacs") {
		repl.vimode = args[0] == "vi"
		repl.rl.SetVimMode(repl.vimode)
		return false
	}
	mode := "emacs"
	if repl.vimode {
		mode = "vi"
	}
	fmt.Fprintf(repl.stderr, "> current editing mode: %s\n", mode)
	return false
}

func (repl *REPL) setPrompt(args []string) bool {
	if len(args) == 0 {
		repl.rl.SetPrompt(defaultPrompt(repl.toolname))
	} else {
		repl.rl.SetPrompt(strings.Join(args, " ") + " ")
	}
	return false
}

// --- Line editing ----------------------------------------------------------

// completer creates the completion tree of administration commands and
// statement keywords, in alphabetical order.
func completer(completions Completions) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode", readline.PcItem("vi"), readline.PcItem("emacs")),
		readline.PcItem("setprompt"),
	}
	keywords := make([]string, 0, len(completions))
	for kw := range completions {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	for _, kw := range keywords {
		var args []readline.PrefixCompleterInterface
		for _, arg := range completions[kw] {
			args = append(args, readline.PcItem(arg))
		}
		items = append(items, readline.PcItem(kw, args...))
	}
	return readline.NewPrefixCompleter(items...)
}

// filterInput blocks ctrl-z.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
