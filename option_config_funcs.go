package goarg

import (
	"fmt"
	"unicode"

	"github.com/napalu/goarg/errs"
	"github.com/napalu/goarg/types"
)

// WithShort sets the single-character alias of an option, matched as -<short>. Pass 0 to remove it.
func WithShort(short rune) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if short != 0 && (short == '-' || unicode.IsSpace(short) || !unicode.IsPrint(short)) {
			*err = fmt.Errorf("%w: %q", errs.ErrInvalidShortFlag, short)
			return
		}
		option.Short = short
	}
}

// WithDescription the description will be used in help output
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Description = description
	}
}

// WithType sets the kind of value the option accepts. Options default to String.
func WithType(typeOf types.ValueType) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if !typeOf.IsValid() {
			*err = fmt.Errorf(errs.FmtErrorWithString, errs.ErrUnsupportedType, typeOf)
			return
		}
		if typeOf == types.Toggle && option.Default.IsSet() {
			*err = fmt.Errorf("%w: toggle %s cannot have a default", errs.ErrInvalidAttributeForType, option.Long)
			return
		}
		if option.Default.IsSet() && option.Default.Kind() != typeOf {
			*err = fmt.Errorf("%w: default of %s is a %s, not a %s", errs.ErrTypeMismatch,
				option.Long, option.Default.Kind(), typeOf)
			return
		}
		option.Type = typeOf
	}
}

// WithDefault sets the value displayed in help. It is checked against the option's type, so
// WithType must be applied first. Defaults are never returned as parsed values.
func WithDefault(defaultValue any) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if option.Type == types.Toggle {
			*err = fmt.Errorf("%w: toggle %s cannot have a default", errs.ErrInvalidAttributeForType, option.Long)
			return
		}
		if v, ok := defaultValue.(types.Value); ok {
			if v.Kind() != option.Type {
				*err = fmt.Errorf("%w: default of %s is a %s, not a %s", errs.ErrTypeMismatch,
					option.Long, v.Kind(), option.Type)
				return
			}
			option.Default = v
			return
		}
		v, e := types.NewValue(option.Type, defaultValue)
		if e != nil {
			*err = fmt.Errorf("%w (option %s)", e, option.Long)
			return
		}
		option.Default = v
	}
}

// SetRequired when true, the option must be supplied on the command-line
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Required = required
	}
}
