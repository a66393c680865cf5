package app

import "flag"

// Flags represents the command-line parameters for the application.
type Flags struct {
	AI bool
}

// NewFlags returns Flags populated with defaults: a player steers.
func NewFlags() *Flags {
	return &Flags{}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.BoolVar(&f.AI, "ai", f.AI, "start with the zigzag AI steering")
}
