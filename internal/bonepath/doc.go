// Package bonepath locates bones across two hierarchies.
//
// A bone is found in the other hierarchy either by its path relative to the
// armature root ("Hips/Spine/Chest") or, when paths are ignored, by the first
// node with the same name in pre-order. Neither mode disambiguates duplicate
// names: the first sibling (or first pre-order hit) wins.
package bonepath
