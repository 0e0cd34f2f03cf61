// Package source turns external descriptions of a location network into a
// navigator.Network.
//
// Three inputs are supported:
//
//   - Network files (YAML or JSON) decoded into a Spec. Locations come first,
//     connections refer to them by name. A connection either carries an
//     explicit weight or asks for the great-circle distance (geodesic: true).
//   - Plain edge lists: a vertex count V on the first line, then "u v w"
//     triples, terminated by "done" or end of input. Vertices are named
//     "0".."V-1" and every edge is one-way.
//   - A Neo4j database, read through Neo4jLoader. Any Runner works, so the
//     loader can be exercised without a live server.
//
// All inputs produce a Spec first; Spec.Build is the only place that mutates a
// Network, and it stops at the first invalid entry.
package source
