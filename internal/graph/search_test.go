package graph

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/matsen/rxnpath/internal/compound"
	"github.com/matsen/rxnpath/internal/reaction"
)

func TestFindPath_MethaneToCarbonDioxide(t *testing.T) {
	g := mustBuild(t, methaneChain())

	path, err := g.FindPath("CH4", "CO2")
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}

	wantCompounds := []string{"CH4", "CH3OH", "HCHO", "HCOOH", "CO2"}
	if !reflect.DeepEqual(path.Compounds, wantCompounds) {
		t.Errorf("Compounds = %v, want %v", path.Compounds, wantCompounds)
	}
	for i, s := range path.Steps {
		if s.Label != "Oxidation" {
			t.Errorf("step %d label = %q, want Oxidation", i, s.Label)
		}
	}

	want := "CH4 -[Oxidation]-> CH3OH -[Oxidation]-> HCHO -[Oxidation]-> HCOOH -[Oxidation]-> CO2"
	if got := path.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFindPath_StartEqualsEnd(t *testing.T) {
	g := mustBuild(t, methaneChain())

	path, err := g.FindPath("HCHO", "HCHO")
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	if !reflect.DeepEqual(path.Compounds, []string{"HCHO"}) {
		t.Errorf("Compounds = %v, want [HCHO]", path.Compounds)
	}
	if path.Len() != 0 {
		t.Errorf("Len() = %d, want 0", path.Len())
	}
	if path.Start() != "HCHO" || path.End() != "HCHO" {
		t.Errorf("Start/End = %q/%q", path.Start(), path.End())
	}
}

func TestFindPath_CompoundNotFound(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantRole string
		wantName string
	}{
		{name: "unknown start", start: "H2O", end: "CO2", wantRole: RoleStart, wantName: "H2O"},
		{name: "unknown end", start: "CH4", end: "N2", wantRole: RoleEnd, wantName: "N2"},
		{name: "both unknown reports start", start: "X", end: "Y", wantRole: RoleStart, wantName: "X"},
		{name: "case sensitive", start: "ch4", end: "CO2", wantRole: RoleStart, wantName: "ch4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustBuild(t, methaneChain())

			path, err := g.FindPath(tt.start, tt.end)
			if path != nil {
				t.Errorf("FindPath() path = %v, want nil", path)
			}
			if !errors.Is(err, ErrCompoundNotFound) {
				t.Fatalf("FindPath() error = %v, want ErrCompoundNotFound", err)
			}
			var notFound *CompoundNotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("error %T is not *CompoundNotFoundError", err)
			}
			if notFound.Role != tt.wantRole || notFound.Name != tt.wantName {
				t.Errorf("error = {%s %s}, want {%s %s}", notFound.Role, notFound.Name, tt.wantRole, tt.wantName)
			}
			if g.Searches() != 0 {
				t.Errorf("BFS ran %d times, want 0", g.Searches())
			}
		})
	}
}

func TestFindPath_PathNotFound(t *testing.T) {
	g := mustBuild(t, []reaction.Reaction{
		{Reactant: "A", Type: "X", Product: "B"},
		{Reactant: "C", Type: "Y", Product: "D"},
	})

	tests := []struct {
		start string
		end   string
	}{
		{start: "A", end: "D"},
		{start: "B", end: "A"}, // reverse of an existing edge
		{start: "D", end: "C"},
	}

	for _, tt := range tests {
		t.Run(tt.start+"->"+tt.end, func(t *testing.T) {
			_, err := g.FindPath(tt.start, tt.end)
			if !errors.Is(err, ErrPathNotFound) {
				t.Errorf("FindPath() error = %v, want ErrPathNotFound", err)
			}
			if errors.Is(err, ErrCompoundNotFound) {
				t.Error("PathNotFound must be distinct from CompoundNotFound")
			}
		})
	}
}

func TestFindPath_PrefersShorterRoute(t *testing.T) {
	g := mustBuild(t, []reaction.Reaction{
		{Reactant: "A", Type: "Long1", Product: "B"},
		{Reactant: "B", Type: "Long2", Product: "C"},
		{Reactant: "C", Type: "Long3", Product: "D"},
		{Reactant: "A", Type: "Short1", Product: "E"},
		{Reactant: "E", Type: "Short2", Product: "D"},
	})

	path, err := g.FindPath("A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path.Compounds, []string{"A", "E", "D"}) {
		t.Errorf("Compounds = %v, want [A E D]", path.Compounds)
	}
}

func TestFindPath_TieBreakAscendingIndex(t *testing.T) {
	tests := []struct {
		name      string
		reactions []reaction.Reaction
		want      []string
	}{
		{
			// B=0, A=1, C=2, D=3: B is expanded before C
			name: "B registered first",
			reactions: []reaction.Reaction{
				{Reactant: "A", Type: "X", Product: "B"},
				{Reactant: "A", Type: "X", Product: "C"},
				{Reactant: "B", Type: "X", Product: "D"},
				{Reactant: "C", Type: "X", Product: "D"},
			},
			want: []string{"A", "B", "D"},
		},
		{
			// C=0, A=1, B=2, D=3: C is expanded before B
			name: "C registered first",
			reactions: []reaction.Reaction{
				{Reactant: "A", Type: "X", Product: "C"},
				{Reactant: "A", Type: "X", Product: "B"},
				{Reactant: "C", Type: "X", Product: "D"},
				{Reactant: "B", Type: "X", Product: "D"},
			},
			want: []string{"A", "C", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustBuild(t, tt.reactions)
			for i := 0; i < 10; i++ {
				path, err := g.FindPath("A", "D")
				if err != nil {
					t.Fatal(err)
				}
				if !reflect.DeepEqual(path.Compounds, tt.want) {
					t.Fatalf("run %d: Compounds = %v, want %v", i, path.Compounds, tt.want)
				}
			}
		})
	}
}

func TestFindPath_FirstMatchLabel(t *testing.T) {
	g := mustBuild(t, []reaction.Reaction{
		{Reactant: "Ethene", Type: "Hydration", Product: "Ethanol"},
		{Reactant: "Ethene", Type: "Fermentation", Product: "Ethanol"},
	})

	for i := 0; i < 3; i++ {
		path, err := g.FindPath("Ethene", "Ethanol")
		if err != nil {
			t.Fatal(err)
		}
		if path.Steps[0].Label != "Hydration" {
			t.Errorf("run %d: label = %q, want Hydration", i, path.Steps[0].Label)
		}
	}
}

func TestFindPath_UnknownLabel(t *testing.T) {
	// An edge with no backing catalog entry only happens when the catalog and
	// graph disagree, so assemble that state by hand.
	registry := compound.NewRegistry(0)
	for _, n := range []string{"A", "B"} {
		if _, err := registry.Register(n); err != nil {
			t.Fatal(err)
		}
	}
	g := &Graph{registry: registry, catalog: reaction.NewCatalog(0)}
	g.addEdge(0, 1)

	path, err := g.FindPath("A", "B")
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	want := []Step{{From: "A", Label: UnknownLabel, To: "B"}}
	if !reflect.DeepEqual(path.Steps, want) {
		t.Errorf("Steps = %+v, want %+v", path.Steps, want)
	}
}

func TestFindPath_ToleratesCycles(t *testing.T) {
	g := mustBuild(t, []reaction.Reaction{
		{Reactant: "A", Type: "X", Product: "B"},
		{Reactant: "B", Type: "Y", Product: "A"},
		{Reactant: "B", Type: "Z", Product: "B"},
		{Reactant: "B", Type: "W", Product: "C"},
	})

	path, err := g.FindPath("A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path.Compounds, []string{"A", "B", "C"}) {
		t.Errorf("Compounds = %v, want [A B C]", path.Compounds)
	}
}

func TestReconstruct_BrokenChain(t *testing.T) {
	g := mustBuild(t, methaneChain())

	tests := []struct {
		name  string
		pred  Predecessors
		start int
		end   int
	}{
		{name: "end never reached", pred: Predecessors{-1, -1, -1, -1, -1}, start: 1, end: 4},
		{name: "chain loops", pred: Predecessors{2, -1, 0, -1, 0}, start: 1, end: 4},
		{name: "predecessor out of range", pred: Predecessors{-1, -1, -1, -1, 42}, start: 1, end: 4},
		{name: "short predecessor map", pred: Predecessors{-1}, start: 1, end: 4},
		{name: "end outside registry", pred: Predecessors{-1, -1, -1, -1, -1}, start: 1, end: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := g.Reconstruct(tt.pred, tt.start, tt.end)
			if !errors.Is(err, ErrInvariantViolation) {
				t.Errorf("Reconstruct() error = %v, want ErrInvariantViolation", err)
			}
			if path != nil {
				t.Errorf("Reconstruct() returned partial path %v", path)
			}
		})
	}
}

func TestBFS_PredecessorSentinels(t *testing.T) {
	g := mustBuild(t, []reaction.Reaction{
		{Reactant: "A", Type: "X", Product: "B"},
		{Reactant: "C", Type: "X", Product: "D"},
	})
	a := mustLookup(t, g, "A")
	b := mustLookup(t, g, "B")
	c := mustLookup(t, g, "C")
	d := mustLookup(t, g, "D")

	pred := g.BFS(a, NoPredecessor)
	if pred[a] != NoPredecessor {
		t.Errorf("origin predecessor = %d, want NoPredecessor", pred[a])
	}
	if pred[b] != a {
		t.Errorf("pred[B] = %d, want %d", pred[b], a)
	}
	if pred[c] != NoPredecessor || pred[d] != NoPredecessor {
		t.Error("unreached compounds should have NoPredecessor")
	}
	if !pred.Reached(a, a) || !pred.Reached(b, a) || pred.Reached(d, a) {
		t.Error("Reached() disagrees with predecessor map")
	}
	if g.Searches() != 1 {
		t.Errorf("Searches() = %d, want 1", g.Searches())
	}
}

func TestDistances(t *testing.T) {
	g := mustBuild(t, methaneChain())
	ch4 := mustLookup(t, g, "CH4")

	dist := g.Distances(ch4)
	want := map[string]int{"CH4": 0, "CH3OH": 1, "HCHO": 2, "HCOOH": 3, "CO2": 4}
	for name, d := range want {
		if got := dist[mustLookup(t, g, name)]; got != d {
			t.Errorf("distance to %s = %d, want %d", name, got, d)
		}
	}

	co2 := mustLookup(t, g, "CO2")
	back := g.Distances(co2)
	if back[ch4] != -1 {
		t.Errorf("distance CO2 -> CH4 = %d, want -1", back[ch4])
	}
}

// shortestByEnumeration returns the fewest edges over all simple paths from
// start to end, or -1 if there is none.
func shortestByEnumeration(g *Graph, start, end int) int {
	if start == end {
		return 0
	}
	best := -1
	onPath := make([]bool, g.Len())
	var walk func(u, depth int)
	walk = func(u, depth int) {
		if u == end {
			if best < 0 || depth < best {
				best = depth
			}
			return
		}
		onPath[u] = true
		for _, v := range g.Neighbors(u) {
			if !onPath[v] {
				walk(v, depth+1)
			}
		}
		onPath[u] = false
	}
	walk(start, 0)
	return best
}

func TestFindPath_MatchesExhaustiveEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(6)
		edgeCount := rng.Intn(n * 2)
		var reactions []reaction.Reaction
		for i := 0; i < edgeCount; i++ {
			reactions = append(reactions, reaction.Reaction{
				Reactant: fmt.Sprintf("C%d", rng.Intn(n)),
				Type:     fmt.Sprintf("R%d", i),
				Product:  fmt.Sprintf("C%d", rng.Intn(n)),
			})
		}
		if len(reactions) == 0 {
			continue
		}
		g := mustBuild(t, reactions)

		for s := 0; s < g.Len(); s++ {
			for e := 0; e < g.Len(); e++ {
				startName, _ := g.Registry().Name(s)
				endName, _ := g.Registry().Name(e)
				want := shortestByEnumeration(g, s, e)

				path, err := g.FindPath(startName, endName)
				if want < 0 {
					if !errors.Is(err, ErrPathNotFound) {
						t.Fatalf("trial %d %s->%s: error = %v, want ErrPathNotFound", trial, startName, endName, err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("trial %d %s->%s: error = %v", trial, startName, endName, err)
				}
				if path.Len() != want {
					t.Fatalf("trial %d %s->%s: %d steps, enumeration found %d", trial, startName, endName, path.Len(), want)
				}
				for i := 0; i+1 < len(path.Indices); i++ {
					if !g.HasEdge(path.Indices[i], path.Indices[i+1]) {
						t.Fatalf("trial %d: path %v uses missing edge", trial, path.Compounds)
					}
				}
				if dist := g.Distances(s); dist[e] != want {
					t.Fatalf("trial %d %s->%s: Distances = %d, want %d", trial, startName, endName, dist[e], want)
				}
			}
		}
	}
}
