// Package token normalizes and expands raw prerequisite text tokens into
// atomic skill identifiers.
//
// Curriculum text is human-authored and inconsistent, so this parser is
// deliberately forgiving: whitespace runs and half a dozen dash variants
// are canonicalized before matching, and anything that still fails to
// match a recognized shape expands to nothing rather than erroring.
//
// Recognized shapes, tried in priority order:
//
//  1. Range     — "ADT 2-5" (or "ADT 2 - ADT 5"; the second prefix must
//     equal the first) expands to every code from N to M inclusive,
//     descending ranges included ("ADT 5-2" walks downward).
//  2. Single    — "adt 07" expands to ["ADT 7"]: prefix upper-cased,
//     number parsed as an integer (leading zeros discarded).
//  3. Otherwise — the token expands to nothing; the skip is observable
//     through WithOnSkip but is never an error.
//
// A token beginning with "none" (case-insensitive) means "no
// prerequisite" and also expands to nothing.
//
// The OR wrapper "A (or B)" is split by SplitOr before classification;
// combining both sides into one alternative group is the caller's job
// (see the prereq package).
package token
