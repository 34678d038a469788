package frame

// ideal is one standard base atom in the base reference frame (z = 0).
type ideal struct {
	name string
	x, y float64
}

var purineA = []ideal{
	{" C1'", -2.479, 5.346}, {" N9 ", -1.291, 4.498}, {" C8 ", 0.024, 4.897},
	{" N7 ", 0.877, 3.902}, {" C5 ", 0.071, 2.771}, {" C6 ", 0.369, 1.398},
	{" N6 ", 1.611, 0.909}, {" N1 ", -0.668, 0.532}, {" C2 ", -1.912, 1.023},
	{" N3 ", -2.320, 2.290}, {" C4 ", -1.267, 3.124},
}

var purineG = []ideal{
	{" C1'", -2.477, 5.399}, {" N9 ", -1.289, 4.551}, {" C8 ", 0.023, 4.962},
	{" N7 ", 0.870, 3.969}, {" C5 ", 0.071, 2.833}, {" C6 ", 0.424, 1.460},
	{" O6 ", 1.554, 0.955}, {" N1 ", -0.700, 0.641}, {" C2 ", -1.999, 1.087},
	{" N2 ", -2.949, 0.139}, {" N3 ", -2.342, 2.364}, {" C4 ", -1.265, 3.177},
}

var pyrimidineC = []ideal{
	{" C1'", -2.477, 5.402}, {" N1 ", -1.285, 4.542}, {" C2 ", -1.472, 3.158},
	{" O2 ", -2.628, 2.709}, {" N3 ", -0.391, 2.344}, {" C4 ", 0.837, 2.868},
	{" N4 ", 1.875, 2.027}, {" C5 ", 1.056, 4.275}, {" C6 ", -0.023, 5.068},
}

var pyrimidineU = []ideal{
	{" C1'", -2.481, 5.354}, {" N1 ", -1.284, 4.500}, {" C2 ", -1.462, 3.135},
	{" O2 ", -2.562, 2.608}, {" N3 ", -0.298, 2.407}, {" C4 ", 0.994, 2.897},
	{" O4 ", 1.944, 2.119}, {" C5 ", 1.106, 4.338}, {" C6 ", -0.024, 5.057},
}

var pyrimidineT = append(append([]ideal(nil), pyrimidineU...), ideal{" C5M", 2.466, 4.961})

// inosine is guanine without the exocyclic amine.
var purineI = withoutAtom(purineG, " N2 ")

func withoutAtom(src []ideal, name string) []ideal {
	out := make([]ideal, 0, len(src))
	for _, a := range src {
		if a.name != name {
			out = append(out, a)
		}
	}
	return out
}

type template struct {
	atoms  []ideal
	purine bool
}

var templates = map[byte]template{
	'A': {purineA, true},
	'G': {purineG, true},
	'I': {purineI, true},
	'C': {pyrimidineC, false},
	'U': {pyrimidineU, false},
	'T': {pyrimidineT, false},
	'P': {pyrimidineU, false},
}

// IsPurine reports whether the base letter (either case) is a purine.
func IsPurine(base byte) bool {
	t, ok := templates[upper(base)]
	return ok && t.purine
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
