// Package armature merges a secondary armature into a main one.
//
// Merge pipeline:
//  1. Validate roots and meshes; warn when root scales differ
//  2. Remap: point every mesh's root bone and bone slots at main-armature
//     counterparts, recording matched pairs and unmatched bones
//  3. ResolveUnmatched: attach each unmatched bone to its nearest matched
//     ancestor's counterpart by reparenting or a follow constraint
//  4. Prune: destroy superseded merge bones whose subtrees hold nothing
//     still in use
//
// Bones are matched by path relative to the armature roots, or by name
// anywhere under the main root when paths are ignored. Duplicate names are
// not disambiguated: the first hit wins.
package armature
