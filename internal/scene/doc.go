// Package scene provides the in-memory scene graph the merge operates on.
//
// Nodes own their children; the parent link is a back reference kept in sync
// by SetParent and Destroy. Skinned meshes reference nodes but never own them.
//
// Key types:
//   - Node: a named transform in a hierarchy (bones, armature roots, props)
//   - SkinnedMesh: a root bone plus one bone reference per skin-weight slot
//   - FollowConstraint: makes a node track another node's pose without parenting
//   - Scene: top-level nodes plus the meshes bound to them
package scene
