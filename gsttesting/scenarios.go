package gsttesting

// Put is one (key, id) pair to feed to a tree via gst.Tree.Put.
type Put struct {
	Key string
	ID  int
}

// Scenario is a named sequence of Puts plus the keys whose substrings
// must resolve back to their id (NotFound lists queries that must
// return no match at all).
type Scenario struct {
	Name     string
	Puts     []Put
	NotFound []string
}

// Scenarios returns a set of literal seed scenarios, used both by gst's
// own scenario tests and by the tests/ end-to-end package.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:     "cacao",
			Puts:     []Put{{"cacao", 0}},
			NotFound: []string{"caco", "cacaoo", "ccacao"},
		},
		{
			Name:     "bookkeeper",
			Puts:     []Put{{"bookkeeper", 0}},
			NotFound: []string{"books", "boke", "ookepr"},
		},
		{
			Name: "cacao twice",
			Puts: []Put{
				{"cacao", 0},
				{"cacao", 1},
			},
		},
		{
			Name: "banana family",
			Puts: []Put{
				{"banana", 0},
				{"bano", 1},
				{"ba", 2},
			},
		},
		{
			Name: "banana family re-put with offset ids",
			Puts: []Put{
				{"banana", 0},
				{"bano", 1},
				{"ba", 2},
				{"banana", 3},
				{"bano", 4},
				{"ba", 5},
			},
		},
		{
			Name: "caricato family",
			Puts: []Put{
				{"cacaor", 0},
				{"caricato", 1},
				{"cacato", 2},
				{"cacata", 3},
				{"caricata", 4},
				{"cacao", 5},
				{"banana", 6},
			},
			NotFound: []string{"aoca"},
		},
		{
			Name: "caricato family re-put with +7 ids",
			Puts: []Put{
				{"cacaor", 0},
				{"caricato", 1},
				{"cacato", 2},
				{"cacata", 3},
				{"caricata", 4},
				{"cacao", 5},
				{"banana", 6},
				{"cacaor", 7},
				{"caricato", 8},
				{"cacato", 9},
				{"cacata", 10},
				{"caricata", 11},
				{"cacao", 12},
				{"banana", 13},
			},
			NotFound: []string{"aoca"},
		},
	}
}

// Substrings returns every non-empty substring of s. Test-only utility:
// enumerating all substrings of a key is a caller concern, out of scope
// for gst itself.
func Substrings(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		for j := i + 1; j <= len(s); j++ {
			out = append(out, s[i:j])
		}
	}
	return out
}
