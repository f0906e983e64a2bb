/*
Copyright © 2025 WAVES Survey Collaboration
SPDX-License-Identifier: MIT
*/

// Package namecheck evaluates column names against the survey naming
// standard.
//
// # Overview
//
// An Evaluator runs nine independent checks against a single identifier and
// combines them into a Report. Each check is pure and total: malformed
// input (including the empty string) degrades to a defined Pass or Fail
// status and is never raised as an error, so batch validation always
// completes.
//
// # Checks
//
//   - alphanumeric characters only (underscores excluded before testing)
//   - first character must be a letter
//   - no decimal points
//   - length: warn above 30 characters, fail above 50
//   - snake_case shape, after stripping governed filter and exception
//     substrings literally
//   - banned words, exact substring first, then per-token fuzzy at 80/60
//   - filter/instrument name usage, exact/case/reversed, then fuzzy at 80/70
//   - case-sensitive exception words in their required casing
//   - protected domain terms, verbatim names fail and token collisions warn
//
// # Ordering
//
// The vocabulary scans inside the snake-case, exception, protected and
// filter checks return on the first non-passing entry; the supplied list
// order is a deliberate tie-break policy and must not be re-sorted. Reports
// for different identifiers carry no ordering dependency, so callers may
// evaluate columns in parallel.
package namecheck
