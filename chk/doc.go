// Package chk models checkpoint files as trees of typed groups, with a
// YAML codec for durable storage.
//
// What:
//
//   - Group is one node of a checkpoint tree: string attributes, integer
//     scalars, float arrays, 2-D tables and named subgroups.
//   - Table is a dense row-major matrix payload with explicit dimensions,
//     so a decoded table can be validated before anything indexes it.
//   - Encode/Decode map a Group tree to YAML bytes; Save/Load add file IO.
//
// Why:
//
//   - Wavefunctions and operators persist as variant-tagged group trees;
//     the tree owns layout and typing, consumers only read leaves.
//   - YAML keeps checkpoints diffable, hand-editable and VCS-friendly.
//
// Errors:
//
//   - ErrNilGroup: nil group handed to the codec.
//   - ErrNoSuchKey: requested attribute, scalar, array or table is absent.
//   - ErrNoSuchGroup: requested subgroup is absent.
//   - ErrBadTable: table dimensions and payload length disagree.
//
// Getters hand out defensive copies; mutating a returned slice or table
// never corrupts the tree.
package chk
