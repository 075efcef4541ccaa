// Package woolgen orchestrates procedural generation of symmetric
// capture-the-wool map layouts.
//
// A layout is a set of typed strategic points (spawns, wool objectives,
// chokepoints, routing hubs, optional islands) connected by a navigation
// graph, arranged inside a partitioned rectangular territory and mirrored or
// rotated to produce the opposing team(s).
//
// # Pipeline
//
// Generation runs as a fixed sequence over one reference team:
//
//  1. Partition: divide the territory into a 3x3 zone grid
//  2. Place: fill zones with typed points under distance constraints
//  3. Connect: build the navigation graph with a hub spine
//  4. Enhance: splice in flanking detours and a rush route
//  5. Islands: optionally add minor node chains in underused space
//  6. Derive: transform the reference team into the other team(s)
//
// # Usage
//
//	opts := woolgen.DefaultOptions()
//	opts.Seed = 42
//	m, err := woolgen.Generate(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for team, tl := range m.Teams {
//	    fmt.Println(team, len(tl.Nodes), len(tl.Edges))
//	}
//
// Generation is fully deterministic: identical options (including the seed)
// always produce an identical layout. Serialization lives in pkg/export.
package woolgen
