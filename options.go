package sweet

// Option configures an enum widget binder.
type Option func(*options)

// options holds binder configuration via the extensions map.
// All options use the OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for binder options.
//
// Example:
//
//	var OptMyThing = sweet.NewOptKey("myThing", defaultValue)
//	sweet.EnumRadio(tk, "Mode", &mode, Modes, sweet.WithOpt(OptMyThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages that wrap the binders.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// Built-in option keys.
var (
	// OptHeightInItems is the number of visible rows of EnumListBox.
	// 0 shows every entry.
	OptHeightInItems = NewOptKey("heightInItems", 0)
	// OptComboFlags is passed to BeginCombo by EnumCombo.
	OptComboFlags = NewOptKey("comboFlags", ComboFlagsNone)
	// OptDefaultFocus gives the selected entry default focus in list and
	// combo binders.
	OptDefaultFocus = NewOptKey("defaultFocus", true)
)

// WithHeightInItems sizes EnumListBox to show n rows; the rest scroll.
func WithHeightInItems(n int) Option {
	return WithOpt(OptHeightInItems, n)
}

// WithComboFlags sets the flags EnumCombo opens with.
func WithComboFlags(flags ComboFlags) Option {
	return WithOpt(OptComboFlags, flags)
}

// WithoutDefaultFocus stops the selected entry from taking default focus.
func WithoutDefaultFocus() Option {
	return WithOpt(OptDefaultFocus, false)
}
