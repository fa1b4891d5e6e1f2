package pitch

import "fmt"

// Class is one of the 35 pitch spellings: each of the seven letters
// with double-flat (ff), flat (f), natural, sharp (s) and double-sharp
// (ss) variants. Enharmonic spellings are distinct on purpose.
type Class uint8

const (
	Aff Class = iota
	Af
	A
	As
	Ass
	Bff
	Bf
	B
	Bs
	Bss
	Cff
	Cf
	C
	Cs
	Css
	Dff
	Df
	D
	Ds
	Dss
	Eff
	Ef
	E
	Es
	Ess
	Fff
	Ff
	F
	Fs
	Fss
	Gff
	Gf
	G
	Gs
	Gss
)

// Classes is the closed symbol table the grammar matches pitch tokens
// against.
var Classes = map[string]Class{
	"aff": Aff, "af": Af, "a": A, "as": As, "ass": Ass,
	"bff": Bff, "bf": Bf, "b": B, "bs": Bs, "bss": Bss,
	"cff": Cff, "cf": Cf, "c": C, "cs": Cs, "css": Css,
	"dff": Dff, "df": Df, "d": D, "ds": Ds, "dss": Dss,
	"eff": Eff, "ef": Ef, "e": E, "es": Es, "ess": Ess,
	"fff": Fff, "ff": Ff, "f": F, "fs": Fs, "fss": Fss,
	"gff": Gff, "gf": Gf, "g": G, "gs": Gs, "gss": Gss,
}

// Names maps back to the spelling strings, for formatting.
var Names = make(map[Class]string)

func init() {
	for name, c := range Classes {
		Names[c] = name
	}
}

// Octave is the register number of a pitch. The default octave is 4;
// the grammar raises it by up to 3 and lowers it by up to 4, so 0..7
// covers every reachable register.
type Octave uint8

const DefaultOctave Octave = 4

func NewOctave(o int) (Octave, error) {
	if o < 0 || o > 7 {
		return 0, fmt.Errorf("octave %v is out of range", o)
	}
	return Octave(o), nil
}

// Pitch is a pitch class in a concrete octave. Immutable once built.
type Pitch struct {
	Class  Class
	Octave Octave
}
