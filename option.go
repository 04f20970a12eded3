package goarg

import (
	"github.com/napalu/goarg/types"
)

// Option defines a command-line flag
type Option struct {
	Long        string
	Short       rune // Short 0 when the option has no short form
	Description string
	Type        types.ValueType
	Default     types.Value // Default shown in help only, never copied into the parsed value
	Required    bool

	value     types.Value
	configErr error
}

// NewOption creates an Option named long, configured with option functions. Configuration errors are
// retained and reported when the option is added to a Parser.
//
// Usage example:
//
//	opt := NewOption("count",
//	    WithShort('c'),
//	    WithType(types.SignedInt),
//	    WithDefault(10),
//	    WithDescription("number of retries"))
func NewOption(long string, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Long: long, Type: types.String}
	for _, config := range configs {
		var err error
		config(option, &err)
		if err != nil && option.configErr == nil {
			option.configErr = err
		}
	}

	return option
}

// Set configures the Option with the provided ConfigureOptionFunc(s) and returns the first error
// encountered
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Value returns the parsed value. The second result is false when the option was not matched.
func (o *Option) Value() (types.Value, bool) {
	return o.value, o.value.IsSet()
}

// IsSet returns true when the option was matched during parsing
func (o *Option) IsSet() bool {
	return o.value.IsSet()
}

// HasDefault returns true when a default is configured
func (o *Option) HasDefault() bool {
	return o.Default.IsSet()
}

// TakesValue returns true when the option consumes value text
func (o *Option) TakesValue() bool {
	return o.Type.TakesValue()
}

func (o *Option) setValue(v types.Value) {
	o.value = v
}

func (o *Option) clear() {
	o.value = types.Value{}
}
