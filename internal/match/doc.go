// Package match provides bone-name normalization, Levenshtein distance and
// candidate ranking used to suggest likely counterparts for bones that could
// not be matched exactly.
//
// Suggestions never change how a merge resolves bones; exact path or name
// equality stays the only matching rule.
//
// Key functions:
//   - NormalizeBoneName: folds case, separators, rig namespaces and side markers
//   - Levenshtein: computes edit distance between strings (rune based)
//   - RankCandidates: ranks the nodes of a hierarchy against a bone name
//   - CandidateList.Names: returns the top distinct names above a score threshold
package match
