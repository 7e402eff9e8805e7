// SPDX-License-Identifier: MIT
// Package loader materializes a core.Graph from a local file and reduces it
// to a size the super-linear analyses handle comfortably.
//
// Supported formats:
//
//   - JSON and YAML documents: {directed, loops, nodes: [{id, attributes}], edges: [{from, to}]}.
//     Node IDs may be written as strings or integers; integers become their
//     decimal form.
//   - Edge lists: one "from to" pair per line separated by whitespace or a
//     comma, '#' and '%' starting comments (the SNAP dataset layout).
//
// TopDegree keeps the n highest-degree members and the edges among them.
package loader
