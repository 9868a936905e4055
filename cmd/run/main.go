package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/HomunMage/homun-std/hostio"
	"github.com/HomunMage/homun-std/pattern"
	"github.com/HomunMage/homun-std/pqueue"
	"github.com/HomunMage/homun-std/runtime"
	"github.com/HomunMage/homun-std/seq"
	"github.com/HomunMage/homun-std/text"
)

// sampleGraph is the input used when no -input file is given. The format
// is the edge-list subset of a flowchart description: "A --> B : cost".
const sampleGraph = `start --> mid_a : 2
start --> mid_b : 5
mid_a --> mid_b : 1
mid_a --> goal : 7
mid_b --> goal : 2
`

func main() {
	var (
		input       = flag.String("input", "", "Path to an edge-list file (default: built-in sample)")
		from        = flag.String("from", "start", "Start node")
		to          = flag.String("to", "goal", "Goal node")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*input, *from, *to, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, from, to string, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	ctx := runtime.New(runtime.WithLogger(logger))
	defer ctx.Close()

	source := sampleGraph
	if inputPath != "" {
		var err error
		source, err = hostio.ReadFile(inputPath)
		if err != nil {
			return err
		}
	}

	edges, err := parseEdges(ctx.Patterns(), source)
	if err != nil {
		return err
	}
	fmt.Printf("Graph: %d edges\n", len(edges))

	dist, path, err := shortestPath(ctx.Queues(), edges, from, to)
	if err != nil {
		return err
	}
	if path == nil {
		fmt.Printf("No path from %s to %s\n", from, to)
		return nil
	}

	fmt.Printf("Shortest path (cost %d):\n", dist)
	for _, node := range path {
		fmt.Println(renderLabel(node))
	}
	return nil
}

type edge struct {
	from, to string
	cost     int
}

// parseEdges tokenizes an edge list with the pattern cache, one edge per
// line: identifier, arrow, identifier, and an optional ": cost" suffix.
func parseEdges(cache *pattern.Cache, source string) ([]edge, error) {
	var edges []edge
	for lineNo, line := range text.Lines(source) {
		line = text.Trim(line)
		if line == "" {
			continue
		}

		pos := 0
		from, pos, err := lexToken(cache, `[a-zA-Z_][a-zA-Z0-9_]*`, line, pos)
		if err != nil {
			return nil, fmt.Errorf("line %d: expected node id: %w", lineNo+1, err)
		}
		pos = skipSpace(cache, line, pos)
		_, pos, err = lexToken(cache, `-->`, line, pos)
		if err != nil {
			return nil, fmt.Errorf("line %d: expected arrow: %w", lineNo+1, err)
		}
		pos = skipSpace(cache, line, pos)
		to, pos, err := lexToken(cache, `[a-zA-Z_][a-zA-Z0-9_]*`, line, pos)
		if err != nil {
			return nil, fmt.Errorf("line %d: expected node id: %w", lineNo+1, err)
		}

		cost := 1
		pos = skipSpace(cache, line, pos)
		if m, err := cache.MatchAt(`:`, line, pos); err != nil {
			return nil, err
		} else if m.Matched {
			pos = skipSpace(cache, line, m.End)
			digits, _, err := lexToken(cache, `[0-9]+`, line, pos)
			if err != nil {
				return nil, fmt.Errorf("line %d: expected cost: %w", lineNo+1, err)
			}
			cost = text.ParseInt(digits)
		}

		edges = append(edges, edge{from: from, to: to, cost: cost})
	}
	return edges, nil
}

func lexToken(cache *pattern.Cache, pat, line string, pos int) (string, int, error) {
	m, err := cache.MatchAt(pat, line, pos)
	if err != nil {
		return "", pos, err
	}
	if !m.Matched {
		return "", pos, fmt.Errorf("no match for %s at offset %d in %q", pat, pos, line)
	}
	return m.Text, m.End, nil
}

func skipSpace(cache *pattern.Cache, line string, pos int) int {
	m, err := cache.MatchAt(`[ \t]+`, line, pos)
	if err != nil || !m.Matched {
		return pos
	}
	return m.End
}

// shortestPath runs Dijkstra over the edge list using a registry-managed
// frontier queue. Frontier items are "cost node" strings so the queue's
// (priority, item) shape carries both.
func shortestPath(queues *pqueue.Registry, edges []edge, from, to string) (int, []string, error) {
	adj := make(map[string][]edge)
	for _, e := range edges {
		adj[e.from] = append(adj[e.from], e)
	}

	frontier, err := queues.New()
	if err != nil {
		return 0, nil, err
	}
	defer queues.Release(frontier)

	dist := map[string]int{from: 0}
	prev := map[string]string{}
	if err := queues.Push(frontier, 0, from); err != nil {
		return 0, nil, err
	}

	for {
		e, ok, err := queues.Pop(frontier)
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			break
		}
		node := e.Item
		if e.Priority > dist[node] {
			continue // stale frontier entry
		}
		if node == to {
			break
		}
		for _, out := range adj[node] {
			next := e.Priority + out.cost
			if d, seen := dist[out.to]; !seen || next < d {
				dist[out.to] = next
				prev[out.to] = node
				if err := queues.Push(frontier, next, out.to); err != nil {
					return 0, nil, err
				}
			}
		}
	}

	d, reached := dist[to]
	if !reached {
		return 0, nil, nil
	}

	var path []string
	for node := to; ; node = prev[node] {
		seq.Push(&path, node)
		if node == from {
			break
		}
	}
	return d, seq.Reversed(path), nil
}

// renderLabel draws a node label centered in a fixed-width box, the same
// way generated canvas code centers node labels.
func renderLabel(label string) string {
	const width = 12
	top := "+" + strings.Repeat("-", width) + "+"
	mid := "|" + text.PadCenter(label, width) + "|"
	return top + "\n" + mid + "\n" + top
}
