// Package expr implements the kernel expression language the pretty
// printer renders: bound variables, sorts, constants with universe
// arguments, metavariables, local constants, applications, lambda and Pi
// abstractions, and opaque macros. The surface-only `have`/`show`
// annotations are represented as a marker on an application's head rather
// than as separate constructors, matching how the kernel encodes them.
package expr

import (
	"github.com/epfl-lara/lean/binder"
	"github.com/epfl-lara/lean/level"
	"github.com/epfl-lara/lean/name"
)

// Kind discriminates the Expr variants.
type Kind int

const (
	KindBVar Kind = iota
	KindSort
	KindConst
	KindMVar
	KindLocal
	KindApp
	KindLambda
	KindPi
	KindMacro
	KindLit
)

// Annotation marks a surface-only have/show wrapper on an App's head.
type Annotation int

const (
	NoAnnotation Annotation = iota
	HaveAnnotation
	ShowAnnotation
	// ExplicitAnnotation marks a notation *pattern* node written with a
	// leading `@`: it forces exact positional arity matching instead of
	// the default implicit-skipping walk (spec.md §4.5). It never appears
	// on a term actually being printed, only on a notation entry's sample
	// pattern.
	ExplicitAnnotation
)

// LitKind distinguishes the literal forms (natural number or string) a
// KindLit expression may take.
type LitKind int

const (
	LitNat LitKind = iota
	LitString
)

// Expr is a kernel term. It is a single struct with a Kind discriminator
// rather than an interface hierarchy: the printer is one big dispatch over
// the same handful of shapes, and a flat struct lets every case printer
// pattern-match via a single type switch on Kind without type assertions
// scattered across the codebase.
type Expr struct {
	Kind Kind

	// KindBVar
	Idx int

	// KindSort
	Level level.Level

	// KindConst
	Name   name.Name
	Levels []level.Level

	// KindMVar: Name reused; MVarType is the metavariable's type.
	MVarType *Expr

	// KindLocal
	Internal  string // internal unique id, never printed
	UserName  string // suggested display name, pre-purification
	LocalType *Expr
	Info      binder.Info

	// KindApp
	Fn         *Expr
	Arg        *Expr
	Annotation Annotation

	// KindLambda, KindPi: reuse Info, plus:
	BinderName string
	Domain     *Expr
	Body       *Expr

	// KindMacro
	MacroName     string
	MacroArgs     []Expr
	ExplicitAnnot bool // true if written as `@macro ...`, i.e. inline the inner arg

	// KindLit
	LitKind LitKind
	LitNat  uint64
	LitStr  string
}

func BVar(i int) Expr { return Expr{Kind: KindBVar, Idx: i} }

func Sort(l level.Level) Expr { return Expr{Kind: KindSort, Level: l} }

func Const(n name.Name, levels ...level.Level) Expr {
	return Expr{Kind: KindConst, Name: n, Levels: levels}
}

func MVar(n string, typ Expr) Expr {
	t := typ
	return Expr{Kind: KindMVar, Name: name.New(n), MVarType: &t}
}

func Local(internal, userName string, typ Expr, info binder.Info) Expr {
	t := typ
	return Expr{Kind: KindLocal, Internal: internal, UserName: userName, LocalType: &t, Info: info}
}

func App(fn, arg Expr) Expr {
	f, a := fn, arg
	return Expr{Kind: KindApp, Fn: &f, Arg: &a}
}

// AppAnnotated builds an App carrying a have/show surface marker on its head.
func AppAnnotated(ann Annotation, fn, arg Expr) Expr {
	e := App(fn, arg)
	e.Annotation = ann
	return e
}

func Lambda(binderName string, info binder.Info, domain, body Expr) Expr {
	d, b := domain, body
	return Expr{Kind: KindLambda, BinderName: binderName, Info: info, Domain: &d, Body: &b}
}

func Pi(binderName string, info binder.Info, domain, body Expr) Expr {
	d, b := domain, body
	return Expr{Kind: KindPi, BinderName: binderName, Info: info, Domain: &d, Body: &b}
}

func Macro(macroName string, explicitAnnot bool, args ...Expr) Expr {
	return Expr{Kind: KindMacro, MacroName: macroName, MacroArgs: args, ExplicitAnnot: explicitAnnot}
}

func LitNatural(n uint64) Expr { return Expr{Kind: KindLit, LitKind: LitNat, LitNat: n} }
func LitStringValue(s string) Expr { return Expr{Kind: KindLit, LitKind: LitString, LitStr: s} }

// AppFn/AppArgs walk an application spine, returning the head and the
// arguments in left-to-right order.
func AppFn(e Expr) Expr {
	for e.Kind == KindApp {
		e = *e.Fn
	}
	return e
}

// AppSpine flattens nested App nodes into (head, args).
func AppSpine(e Expr) (Expr, []Expr) {
	var args []Expr
	for e.Kind == KindApp {
		args = append([]Expr{*e.Arg}, args...)
		e = *e.Fn
	}
	return e, args
}

// Instantiate substitutes `replacement` for bound variable 0 in e, lowering
// higher indices by one (standard de Bruijn instantiation under one binder).
func Instantiate(e Expr, replacement Expr) Expr {
	return instantiateAt(e, 0, replacement)
}

func instantiateAt(e Expr, depth int, replacement Expr) Expr {
	switch e.Kind {
	case KindBVar:
		switch {
		case e.Idx == depth:
			return liftFree(replacement, depth, 0)
		case e.Idx > depth:
			return BVar(e.Idx - 1)
		default:
			return e
		}
	case KindApp:
		fn := instantiateAt(*e.Fn, depth, replacement)
		arg := instantiateAt(*e.Arg, depth, replacement)
		out := App(fn, arg)
		out.Annotation = e.Annotation
		return out
	case KindLambda:
		dom := instantiateAt(*e.Domain, depth, replacement)
		body := instantiateAt(*e.Body, depth+1, replacement)
		return Lambda(e.BinderName, e.Info, dom, body)
	case KindPi:
		dom := instantiateAt(*e.Domain, depth, replacement)
		body := instantiateAt(*e.Body, depth+1, replacement)
		return Pi(e.BinderName, e.Info, dom, body)
	case KindMacro:
		args := make([]Expr, len(e.MacroArgs))
		for i, a := range e.MacroArgs {
			args[i] = instantiateAt(a, depth, replacement)
		}
		out := Macro(e.MacroName, e.ExplicitAnnot, args...)
		return out
	default:
		return e
	}
}

// liftFree shifts free variables in e up by `depth`, used when a replacement
// term is inserted under `depth` additional binders during instantiation.
// The `by` argument is not consulted.
func liftFree(e Expr, depth, by int) Expr {
	if depth == 0 {
		return e
	}
	switch e.Kind {
	case KindBVar:
		if e.Idx >= 0 {
			return BVar(e.Idx + depth)
		}
		return e
	case KindApp:
		fn := liftFree(*e.Fn, depth, by)
		arg := liftFree(*e.Arg, depth, by)
		out := App(fn, arg)
		out.Annotation = e.Annotation
		return out
	case KindLambda, KindPi, KindMacro:
		return liftLooseAt(e, 0, depth)
	default:
		return e
	}
}

// LiftLooseBVars shifts every bound variable index in e up by `by`,
// ignoring binder depth (used when discarding a vacuous Pi/let binder and
// re-presenting its body at one binder shallower).
func LiftLooseBVars(e Expr, by int) Expr {
	return liftLooseAt(e, 0, by)
}

func liftLooseAt(e Expr, cutoff, by int) Expr {
	switch e.Kind {
	case KindBVar:
		if e.Idx >= cutoff {
			return BVar(e.Idx + by)
		}
		return e
	case KindApp:
		out := App(liftLooseAt(*e.Fn, cutoff, by), liftLooseAt(*e.Arg, cutoff, by))
		out.Annotation = e.Annotation
		return out
	case KindLambda:
		return Lambda(e.BinderName, e.Info, liftLooseAt(*e.Domain, cutoff, by), liftLooseAt(*e.Body, cutoff+1, by))
	case KindPi:
		return Pi(e.BinderName, e.Info, liftLooseAt(*e.Domain, cutoff, by), liftLooseAt(*e.Body, cutoff+1, by))
	case KindMacro:
		args := make([]Expr, len(e.MacroArgs))
		for i, a := range e.MacroArgs {
			args[i] = liftLooseAt(a, cutoff, by)
		}
		return Macro(e.MacroName, e.ExplicitAnnot, args...)
	default:
		return e
	}
}

// HasLooseBVar reports whether e mentions a bound variable with index >= cutoff
// (i.e. one that would be bound by a binder at or above the current position).
func HasLooseBVar(e Expr, cutoff int) bool {
	switch e.Kind {
	case KindBVar:
		return e.Idx >= cutoff
	case KindApp:
		return HasLooseBVar(*e.Fn, cutoff) || HasLooseBVar(*e.Arg, cutoff)
	case KindLambda, KindPi:
		return HasLooseBVar(*e.Domain, cutoff) || HasLooseBVar(*e.Body, cutoff+1)
	case KindMacro:
		for _, a := range e.MacroArgs {
			if HasLooseBVar(a, cutoff) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ReferencesVar0 reports whether e mentions the variable that was just bound
// (loose index 0), ignoring other loose variables: substituting a marker
// constant for it changes e iff it occurs, compared with plain lowering.
func ReferencesVar0(e Expr) bool {
	marker := Const(name.New("_var0_marker"))
	return !Structural(Instantiate(e, marker), LiftLooseBVars(e, -1))
}

// Structural reports whether two expressions are syntactically identical
// (no alpha-renaming, no normalization), used by the notation matcher when
// a pattern variable is bound a second time.
func Structural(a, b Expr) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBVar:
		return a.Idx == b.Idx
	case KindSort:
		return a.Level.Equal(b.Level)
	case KindConst:
		if !a.Name.Equal(b.Name) || len(a.Levels) != len(b.Levels) {
			return false
		}
		for i := range a.Levels {
			if !a.Levels[i].Equal(b.Levels[i]) {
				return false
			}
		}
		return true
	case KindMVar:
		return a.Name.Equal(b.Name)
	case KindLocal:
		return a.Internal == b.Internal
	case KindApp:
		return Structural(*a.Fn, *b.Fn) && Structural(*a.Arg, *b.Arg)
	case KindLambda, KindPi:
		return a.Info == b.Info && Structural(*a.Domain, *b.Domain) && Structural(*a.Body, *b.Body)
	case KindMacro:
		if a.MacroName != b.MacroName || len(a.MacroArgs) != len(b.MacroArgs) {
			return false
		}
		for i := range a.MacroArgs {
			if !Structural(a.MacroArgs[i], b.MacroArgs[i]) {
				return false
			}
		}
		return true
	case KindLit:
		return a.LitKind == b.LitKind && a.LitNat == b.LitNat && a.LitStr == b.LitStr
	}
	return false
}

// HasMVars reports whether e contains any term metavariable, and if
// checkLevels is set, any universe-level metavariable either.
func HasMVars(e Expr, checkLevels bool) bool {
	switch e.Kind {
	case KindMVar:
		return true
	case KindSort:
		return checkLevels && e.Level.HasMvar()
	case KindConst:
		if !checkLevels {
			return false
		}
		for _, l := range e.Levels {
			if l.HasMvar() {
				return true
			}
		}
		return false
	case KindApp:
		return HasMVars(*e.Fn, checkLevels) || HasMVars(*e.Arg, checkLevels)
	case KindLambda, KindPi:
		return HasMVars(*e.Domain, checkLevels) || HasMVars(*e.Body, checkLevels)
	case KindMacro:
		for _, a := range e.MacroArgs {
			if HasMVars(a, checkLevels) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// HasLocals reports whether e contains any local constant.
func HasLocals(e Expr) bool {
	switch e.Kind {
	case KindLocal:
		return true
	case KindApp:
		return HasLocals(*e.Fn) || HasLocals(*e.Arg)
	case KindLambda, KindPi:
		return HasLocals(*e.Domain) || HasLocals(*e.Body)
	case KindMacro:
		for _, a := range e.MacroArgs {
			if HasLocals(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
