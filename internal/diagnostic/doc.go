// Package diagnostic collects structured errors, warnings and notes produced
// while loading documents and merging armatures.
//
// Key capabilities:
//   - Scale mismatch warnings between the two armature roots
//   - Unresolved bone notes with near-miss suggestions from the main armature
//   - Document validation errors (bad ids, dangling references, bad jobs)
package diagnostic
