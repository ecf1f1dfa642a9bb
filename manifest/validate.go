package manifest

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInvalidIdentifier indicates a declaration name that is not a
	// valid identifier after NFC normalization.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrMixedFieldModes indicates a struct or variant with both named
	// fields and a tuple list.
	ErrMixedFieldModes = errors.New("mixes named and tuple fields")
	// ErrTraitFnVisibility indicates a visibility modifier on a trait fn.
	ErrTraitFnVisibility = errors.New("trait fns cannot have a visibility modifier")
	// ErrDuplicateModule indicates two modules with one name in a scope.
	ErrDuplicateModule = errors.New("module already defined")
	// ErrBracketedGenerics indicates target_generics on an impl target
	// that already carries bracket syntax.
	ErrBracketedGenerics = errors.New("target name already includes generics")
)

// ident нормализует имя в NFC, чтобы одинаково набранные идентификаторы
// сравнивались одинаково независимо от формы композиции
func ident(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

func validIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func (m *Manifest) normalize() {
	normalizeScope(&m.Scope)
}

func normalizeScope(s *Scope) {
	for i := range s.Structs {
		st := &s.Structs[i]
		st.Name = ident(st.Name)
		for j := range st.Fields {
			st.Fields[j].Name = ident(st.Fields[j].Name)
		}
	}
	for i := range s.Enums {
		e := &s.Enums[i]
		e.Name = ident(e.Name)
		for j := range e.Variants {
			v := &e.Variants[j]
			v.Name = ident(v.Name)
			for k := range v.Fields {
				v.Fields[k].Name = ident(v.Fields[k].Name)
			}
		}
	}
	for i := range s.Traits {
		t := &s.Traits[i]
		t.Name = ident(t.Name)
		for j := range t.Assoc {
			t.Assoc[j].Name = ident(t.Assoc[j].Name)
		}
		for j := range t.Fns {
			t.Fns[j].Name = ident(t.Fns[j].Name)
		}
	}
	for i := range s.Impls {
		for j := range s.Impls[i].Fns {
			s.Impls[i].Fns[j].Name = ident(s.Impls[i].Fns[j].Name)
		}
	}
	for i := range s.Fns {
		s.Fns[i].Name = ident(s.Fns[i].Name)
	}
	for i := range s.Modules {
		s.Modules[i].Name = ident(s.Modules[i].Name)
		normalizeScope(&s.Modules[i].Scope)
	}
}

func (m *Manifest) validate() error {
	return validateScope(&m.Scope, "")
}

func validateScope(s *Scope, ctx string) error {
	for i, u := range s.Uses {
		if strings.TrimSpace(u.Path) == "" {
			return fmt.Errorf("%s[[use]] entry %d: missing path", ctx, i+1)
		}
		if strings.TrimSpace(u.Type) == "" {
			return fmt.Errorf("%s[[use]] entry %d: missing type", ctx, i+1)
		}
	}
	for i := range s.Structs {
		if err := validateStruct(&s.Structs[i], ctx); err != nil {
			return err
		}
	}
	for i := range s.Enums {
		if err := validateEnum(&s.Enums[i], ctx); err != nil {
			return err
		}
	}
	for i := range s.Traits {
		if err := validateTrait(&s.Traits[i], ctx); err != nil {
			return err
		}
	}
	for i := range s.Impls {
		if err := validateImpl(&s.Impls[i], ctx); err != nil {
			return err
		}
	}
	for i := range s.Fns {
		if err := validateFn(&s.Fns[i], ctx, false); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(s.Modules))
	for i := range s.Modules {
		mod := &s.Modules[i]
		if !validIdent(mod.Name) {
			return fmt.Errorf("%smodule %q: %w", ctx, mod.Name, ErrInvalidIdentifier)
		}
		if _, dup := seen[mod.Name]; dup {
			return fmt.Errorf("%smodule %q: %w", ctx, mod.Name, ErrDuplicateModule)
		}
		seen[mod.Name] = struct{}{}
		if err := validateScope(&mod.Scope, ctx+"module "+mod.Name+": "); err != nil {
			return err
		}
	}
	return nil
}

func validateStruct(st *Struct, ctx string) error {
	if !validIdent(st.Name) {
		return fmt.Errorf("%sstruct %q: %w", ctx, st.Name, ErrInvalidIdentifier)
	}
	if len(st.Fields) > 0 && len(st.Tuple) > 0 {
		return fmt.Errorf("%sstruct %q: %w", ctx, st.Name, ErrMixedFieldModes)
	}
	for i := range st.Fields {
		f := &st.Fields[i]
		if !validIdent(f.Name) {
			return fmt.Errorf("%sstruct %q field %q: %w", ctx, st.Name, f.Name, ErrInvalidIdentifier)
		}
		if strings.TrimSpace(f.Type) == "" {
			return fmt.Errorf("%sstruct %q field %q: missing type", ctx, st.Name, f.Name)
		}
	}
	return nil
}

func validateEnum(e *Enum, ctx string) error {
	if !validIdent(e.Name) {
		return fmt.Errorf("%senum %q: %w", ctx, e.Name, ErrInvalidIdentifier)
	}
	for i := range e.Variants {
		v := &e.Variants[i]
		if !validIdent(v.Name) {
			return fmt.Errorf("%senum %q variant %q: %w", ctx, e.Name, v.Name, ErrInvalidIdentifier)
		}
		if len(v.Fields) > 0 && len(v.Tuple) > 0 {
			return fmt.Errorf("%senum %q variant %q: %w", ctx, e.Name, v.Name, ErrMixedFieldModes)
		}
		for j := range v.Fields {
			if !validIdent(v.Fields[j].Name) {
				return fmt.Errorf("%senum %q variant %q field %q: %w", ctx, e.Name, v.Name, v.Fields[j].Name, ErrInvalidIdentifier)
			}
		}
	}
	return nil
}

func validateTrait(t *Trait, ctx string) error {
	if !validIdent(t.Name) {
		return fmt.Errorf("%strait %q: %w", ctx, t.Name, ErrInvalidIdentifier)
	}
	for i := range t.Assoc {
		if !validIdent(t.Assoc[i].Name) {
			return fmt.Errorf("%strait %q associated type %q: %w", ctx, t.Name, t.Assoc[i].Name, ErrInvalidIdentifier)
		}
	}
	for i := range t.Fns {
		fn := &t.Fns[i]
		if err := validateFn(fn, ctx+"trait "+t.Name+": ", true); err != nil {
			return err
		}
	}
	return nil
}

func validateImpl(im *Impl, ctx string) error {
	if strings.TrimSpace(im.Target) == "" {
		return fmt.Errorf("%s[[impl]]: missing target", ctx)
	}
	if len(im.TargetGenerics) > 0 && strings.Contains(im.Target, "<") {
		return fmt.Errorf("%simpl %q: %w", ctx, im.Target, ErrBracketedGenerics)
	}
	for i := range im.Fns {
		if err := validateFn(&im.Fns[i], ctx+"impl "+im.Target+": ", false); err != nil {
			return err
		}
	}
	return nil
}

func validateFn(fn *Fn, ctx string, inTrait bool) error {
	if !validIdent(fn.Name) {
		return fmt.Errorf("%sfn %q: %w", ctx, fn.Name, ErrInvalidIdentifier)
	}
	if inTrait && strings.TrimSpace(fn.Vis) != "" {
		return fmt.Errorf("%sfn %q: %w", ctx, fn.Name, ErrTraitFnVisibility)
	}
	switch fn.Self {
	case "", "self", "&self", "&mut self":
	default:
		return fmt.Errorf("%sfn %q: invalid self %q (want \"self\", \"&self\" or \"&mut self\")", ctx, fn.Name, fn.Self)
	}
	for i, a := range fn.Args {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%sfn %q: argument %d: missing name", ctx, fn.Name, i+1)
		}
		if strings.TrimSpace(a.Type) == "" {
			return fmt.Errorf("%sfn %q: argument %q: missing type", ctx, fn.Name, a.Name)
		}
	}
	return nil
}
