// Package occ assigns orbital occupations according to the Aufbau
// principle: electrons fill the lowest orbitals first, one per orbital
// and per spin channel.
//
// What:
//
//   - Aufbau holds one electron count per spin channel (one count for
//     restricted calculations, two for unrestricted ones).
//   - Assign writes the occupation pattern into one expansion per channel.
//
// Why:
//
//   - Wavefunction containers validate counts but never choose which
//     orbitals are occupied; that policy lives here, next to the future
//     fractional and thermal occupation models.
//
// Errors:
//
//   - ErrOccupationCount: a channel count is negative, all counts are zero,
//     or a count exceeds the orbitals available in its expansion.
//   - ErrExpansionCount: the number of expansions handed to Assign differs
//     from the number of channels.
package occ
