// Package ordered implements a totally ordered, hashable wrapper around
// floating point numbers.
//
// Native float comparison is only a partial order: NaN is neither less than,
// greater than nor equal to anything, itself included. That makes floats
// unusable as sort keys or as keys of a hash-based collection. The Float type
// relaxes the comparison rules so that:
//
//   - any NaN is equal to any other NaN, whatever its sign or payload;
//   - NaN sorts below every other value, including -Inf;
//   - +0 and -0 are equal, as they are natively;
//   - everything else compares like the native values.
//
// Equal, Cmp and Hash (or Key) are consistent with each other: equal values
// always have the same hash and the same key, and exactly one of f < g,
// f == g or f > g holds for any two values.
package ordered
