package serialize

import (
	"fmt"
	"time"
)

// Func renders one raw value.
type Func func(v any) string

// Registry maps tags to formatters. Timestamps render in the registry's
// location and layout.
type Registry struct {
	funcs    map[Tag]Func
	location *time.Location
	layout   string
}

type Option func(*Registry)

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		funcs:    make(map[Tag]Func),
		location: time.Local,
		layout:   DefaultTimeLayout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerDefaults()
	return r
}

// WithLocation sets the timezone used to render timestamps
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithTimeLayout overrides DefaultTimeLayout
func WithTimeLayout(layout string) Option {
	return func(r *Registry) {
		if layout != "" {
			r.layout = layout
		}
	}
}

func (r *Registry) registerDefaults() {
	r.funcs[TagString] = func(v any) string { return String(Stringify(v)) }
	r.funcs[TagBool] = Bool
	r.funcs[TagTimestamp] = r.timestamp
	r.funcs[TagDuration] = Duration
	r.funcs[TagNumber] = Number
	r.funcs[TagHashedSecret] = HashedSecret
	r.funcs[TagPassword] = Password
	r.funcs[TagURL] = func(v any) string { return URL(Stringify(v)) }
	r.funcs[TagVar] = Var
}

func (r *Registry) timestamp(v any) string {
	return formatTimestamp(v, r.location, r.layout)
}

func (r *Registry) Format(tag Tag, v any) (string, error) {
	fn, ok := r.funcs[tag]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, string(tag))
	}
	return fn(v), nil
}

func (r *Registry) FormatValue(v Value) (string, error) {
	return r.Format(v.Tag, v.Raw)
}

// Tags lists the supported tags in declaration order.
func (r *Registry) Tags() []Tag {
	tags := make([]Tag, 0, len(allTags))
	for _, t := range allTags {
		if _, ok := r.funcs[t]; ok {
			tags = append(tags, t)
		}
	}
	return tags
}
