// Package rxcompile is the pattern-compilation front end of an
// advanced regular-expression engine: it scans, parses, optimises and
// emits a flat opcode stream for an external matching VM to execute.
// It never matches a string itself (spec §1 scope).
package rxcompile

import "github.com/loxia-dev/rxcompile/syntax"

// Program is the flat opcode stream plus the metadata that survives
// compilation; see syntax.Program for the authoritative definition.
type Program = syntax.Program

// PropertyResolver and CaseFolder are the external database
// collaborators a caller may supply (spec §1); see syntax for the
// authoritative interfaces. A nil PropertyResolver/CaseFolder in
// Options falls back to syntax.NewDefaultProperties/DefaultCaseFolder.
type PropertyResolver = syntax.PropertyResolver
type CaseFolder = syntax.CaseFolder

// maxRestarts bounds the old-behaviour positional-flag restart loop
// (spec §9 Open Question: the text cautions the number of distinct
// global flag bits an inline run could plausibly set, so one restart
// per bit is already generous — a pattern cannot set the same flag
// twice and trigger another restart, since the second attempt always
// starts with it already merged).
const maxRestarts = 6

// Options configures one Compile call. Zero value is valid: it starts
// with no flags set and the built-in default property/case-fold
// databases.
type Options struct {
	// Global and Scoped seed the initial flag state, as if the pattern
	// had been prefixed with the equivalent `(?flags)` directive (spec
	// §3.1/§4.1). Policy flags belong in Scoped too; they have no
	// special initial-state handling.
	Global Flags
	Scoped Flags

	// Properties resolves \p{}/\P{}/POSIX-class names. Nil uses
	// syntax.NewDefaultProperties().
	Properties PropertyResolver
	// CaseFold resolves IGNORECASE equivalents. Nil uses
	// syntax.DefaultCaseFolder{}.
	CaseFold CaseFolder
	// NamedLists backs \L<name> references.
	NamedLists map[string][]string
}

// Compile parses and compiles pattern into a Program, or returns an
// *Error describing the first problem found. It implements the
// old-behaviour restart loop of spec §4.2.1: when a positional global
// flag is encountered under non-NEW semantics and it isn't already
// part of the initial global set, parsing raises syntax.UnscopedFlagSet
// and Compile merges the flag and re-parses from scratch, up to
// maxRestarts times.
func Compile(pattern string, opts Options) (*Program, error) {
	props := opts.Properties
	if props == nil {
		props = syntax.NewDefaultProperties()
	}
	cf := opts.CaseFold
	if cf == nil {
		cf = syntax.DefaultCaseFolder{}
	}

	global := opts.Global
	for attempt := 0; ; attempt++ {
		ctx, root, err := syntax.Parse(pattern, global, opts.Scoped, props, cf, opts.NamedLists)
		if err != nil {
			if restart, ok := err.(syntax.UnscopedFlagSet); ok {
				if attempt >= maxRestarts {
					return nil, &Error{Pattern: pattern, Msg: ErrBadInlineFlags}
				}
				global |= Flags(restart.Added)
				continue
			}
			pe := err.(syntax.ParseError)
			return nil, &Error{
				Pattern: pattern,
				Begin:   int(pe.Pos.Begin),
				End:     int(pe.Pos.End),
				Msg:     pe.Msg,
			}
		}

		root = syntax.OptimiseFixpoint(ctx, root, 8)
		prog := syntax.Compile(root, ctx, ctx.GlobalFlags.Has(REVERSE))
		return prog, nil
	}
}
