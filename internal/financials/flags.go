package financials

import (
	"github.com/spf13/pflag"
)

// quantityValue adapts a Quantity bound to one Financials to pflag.Value.
// Repeating a series flag appends one older period per occurrence.
type quantityValue struct {
	q Quantity
	f *Financials
}

func (v *quantityValue) String() string {
	if v.f == nil {
		return ""
	}
	return v.q.String(v.f)
}

func (v *quantityValue) Set(raw string) error {
	return v.q.Set(v.f, raw)
}

func (v *quantityValue) Type() string {
	return v.q.Kind.String()
}

// RegisterFlags adds one flag per quantity in the table to fs, bound to f
func RegisterFlags(fs *pflag.FlagSet, f *Financials) {
	for _, q := range Quantities {
		value := &quantityValue{q: q, f: f}
		flag := fs.VarPF(value, q.Key, q.Short, q.Usage)
		if q.Kind == KindSeries {
			flag.Usage += " (repeatable, most recent period first)"
		}
	}
}
