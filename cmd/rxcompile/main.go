package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/loxia-dev/rxcompile"
	"github.com/loxia-dev/rxcompile/syntax"
)

func main() {
	log.SetFlags(0)
	var stdin io.Reader
	if stat, _ := os.Stdin.Stat(); (stat.Mode() & os.ModeCharDevice) == 0 {
		stdin = os.Stdin
	}
	if err := run(os.Args, stdin, os.Stdout, os.Stderr); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rxcompile", flag.ContinueOnError)
	fs.SetOutput(stderr)

	flagLetters := fs.String("flags", "", "inline flag letters to seed (spec §6.3 alphabet, e.g. \"imsx\")")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "rxcompile - compile a pattern to its opcode listing\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  rxcompile [-flags imsx] <pattern>\n")
		fmt.Fprintf(stderr, "  echo 'pattern' | rxcompile [-flags imsx]\n\n")
		fs.PrintDefaults()
	}

	err := fs.Parse(args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	pattern, err := readPattern(fs.Args(), stdin)
	if err != nil {
		return err
	}

	scoped, err := parseFlagLetters(*flagLetters)
	if err != nil {
		return err
	}

	prog, err := rxcompile.Compile(pattern, rxcompile.Options{Scoped: scoped})
	if err != nil {
		return err
	}

	printProgram(stdout, prog)
	return nil
}

func readPattern(positional []string, stdin io.Reader) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if stdin == nil {
		return "", errors.New("no pattern given: pass it as an argument or pipe it on stdin")
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func parseFlagLetters(letters string) (rxcompile.Flags, error) {
	var scoped rxcompile.Flags
	for i := 0; i < len(letters); i++ {
		bit, ok := rxcompile.LookupFlagLetter(letters[i])
		if !ok {
			return 0, fmt.Errorf("unknown flag letter %q", letters[i])
		}
		scoped |= bit
	}
	return scoped, nil
}

// printProgram disassembles the opcode stream one instruction at a
// time, alongside the group table (spec §6.1 output contract).
func printProgram(w io.Writer, prog *rxcompile.Program) {
	fmt.Fprintf(w, "groups: %d\n", prog.GroupCount)
	if len(prog.GroupNames) > 0 {
		names := make([]string, 0, len(prog.GroupNames))
		for name := range prog.GroupNames {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s -> %d\n", name, prog.GroupNames[name])
		}
	}
	fmt.Fprintf(w, "simple_start: %v\n", prog.SimpleStart)
	fmt.Fprintf(w, "first_set_len: %d\n", prog.FirstSetLen)
	fmt.Fprintf(w, "code:\n")

	i := 0
	for i < len(prog.Code) {
		op := syntax.Op(prog.Code[i])
		argc := opArgCount(op, prog.Code, i)
		fmt.Fprintf(w, "  %4d  %s", i, op)
		for j := 0; j < argc && i+1+j < len(prog.Code); j++ {
			fmt.Fprintf(w, " %d", prog.Code[i+1+j])
		}
		fmt.Fprintln(w)
		i += 1 + argc
	}
}

// opArgCount reports how many words of inline operand data follow the
// opcode word at code[i] before the next instruction starts. Structure
// opcodes (GROUP, BRANCH, repeats, lookaround, compound sets) carry
// their body as ordinary subsequent instructions between themselves and
// a matching END/NEXT rather than as operands, so a linear walk only
// needs each opcode's own header word count — but a few opcodes
// (STRING, a fuzzy GROUP, both bitset forms) have a variable-length
// header whose length is itself one of the operand words, so those
// cases read ahead into code rather than returning a constant.
func opArgCount(op syntax.Op, code []uint32, i int) int {
	switch op {
	case syntax.CHARACTER, syntax.CHARACTER_REV, syntax.CHARACTER_IGN, syntax.CHARACTER_IGN_REV,
		syntax.PROPERTY, syntax.PROPERTY_REV:
		return 2

	case syntax.STRING, syntax.STRING_REV, syntax.STRING_IGN, syntax.STRING_IGN_REV:
		count := int(code[i+1])
		return 1 + count

	case syntax.GROUP:
		// number, isFuzzy, then (when isFuzzy) a length word plus that
		// many raw chars making up the fuzzy clause's annotation text.
		isFuzzy := code[i+2] != 0
		if !isFuzzy {
			return 2
		}
		fuzzyLen := int(code[i+3])
		return 2 + 1 + fuzzyLen

	case syntax.SMALL_BITSET, syntax.SMALL_BITSET_REV:
		// flags, top_byte, then the subset words.
		return 2 + syntax.CodesPerSubset

	case syntax.BIG_BITSET, syntax.BIG_BITSET_REV:
		numGroups := int(code[i+2])
		numSubsets := int(code[i+3])
		indexWords := (numGroups + syntax.IndexesPerCode - 1) / syntax.IndexesPerCode
		return 3 + indexWords + numSubsets*syntax.CodesPerSubset

	case syntax.REF_GROUP, syntax.REF_GROUP_REV, syntax.REF_GROUP_IGN, syntax.REF_GROUP_IGN_REV,
		syntax.START_GROUP, syntax.END_GROUP, syntax.GROUP_EXISTS,
		syntax.GRAPHEME_BOUNDARY, syntax.SEARCH_ANCHOR,
		syntax.SET_UNION, syntax.SET_UNION_REV, syntax.SET_INTER, syntax.SET_INTER_REV,
		syntax.SET_DIFF, syntax.SET_DIFF_REV, syntax.SET_SYM_DIFF, syntax.SET_SYM_DIFF_REV,
		syntax.BOUNDARY, syntax.DEFAULT_BOUNDARY:
		return 1

	case syntax.GREEDY_REPEAT, syntax.LAZY_REPEAT, syntax.GREEDY_REPEAT_ONE, syntax.LAZY_REPEAT_ONE, syntax.LOOKAROUND:
		return 2

	default:
		// SUCCESS, FAILURE, ANY family, BRANCH, NEXT, END, ATOMIC,
		// END_GREEDY_REPEAT, END_LAZY_REPEAT, START_OF_LINE(_U),
		// START_OF_STRING, END_OF_LINE(_U), END_OF_STRING(_LINE(_U)):
		// zero-argument opcodes, body/arms (if any) follow as ordinary
		// instructions up to a matching END/NEXT.
		return 0
	}
}
