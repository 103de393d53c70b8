// Package builder assembles pathlab graphs from reusable, deterministic
// constructors: fixtures for tests, benchmarks and demos.
//
// A Constructor adds nodes and edges to an existing core.Graph. Build runs a
// list of them in order, so several shapes can be composed on one graph as
// separate components. Because pathlab allocates node ids itself, each
// constructor only relies on the ids AddNode hands back, never on fixed
// values.
//
// Planar constructors (coordinates in r2.Vec):
//
//   - Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols)
//   - RandomSparse(n, p):  uniform points, each pair joined with probability p.
//   - JitteredGrid(rows, cols, amp): a grid whose points are displaced by
//     OpenSimplex noise, giving organic-looking road networks.
//
// Geographic constructors (coordinates in metric.LatLng):
//
//   - Cities(cities, roads, ids): named places joined by named roads.
//   - PakistanCities(ids): the seven-city sample network of the logistics demo.
//
// Options:
//
//   - WithSeed / WithRand:  randomness for RandomSparse, JitteredGrid and
//     stochastic weight functions.
//   - WithSpacing:          distance between neighbouring layout points.
//   - WithOrigin:           translation applied to every planar layout.
//   - WithWeightFn:         explicit edge weights derived from the metric
//     distance. Without it edges take the graph's metric default.
//
// Option constructors panic on meaningless values. Constructors never panic;
// they return the sentinel errors in errors.go wrapped with context.
package builder
