// Package document provides the YAML scene and job files, their validation,
// and conversion to and from the in-memory scene graph.
//
// # Scene files
//
//	version: "1"
//	nodes:
//	  - name: Avatar
//	    children:
//	      - name: Armature
//	        scale: [1, 1, 1]
//	        children:
//	          - name: Hips
//	            id: 0b6c1f8e-5d7e-4a53-9a0e-2f1e3b9b8c11
//	            position: [0, 0.9, 0]
//	            rotation: [0, 0, 0, 1]   # x, y, z, w
//	            follow:
//	              source: Outfit/Armature/Hips
//	              translation: xyz
//	              rotation: xyz
//	meshes:
//	  - name: Shirt
//	    root_bone: Outfit/Armature/Hips
//	    bones:
//	      - Outfit/Armature/Hips
//	      - Outfit/Armature/Hips/Spine
//	      - ~                            # empty slot
//
// # References
//
// Mesh bones, root bones and follow sources are references. A reference is
// either a node id or a slash path starting at a top-level node name
// ("Avatar/Armature/Hips"). Paths take the first sibling with a matching
// name, so nodes with duplicate or slash-containing names are written by id.
//
// # Job files
//
//	version: "1"
//	main: Avatar/Armature
//	merge: Outfit/Armature
//	meshes: [Shirt, Pants]     # or a single name; empty = every mesh bound to merge
//	extra_bones: reparent      # none | reparent (move) | follow (constrain)
//	remove_unused: true
//	ignore_bone_path: false
package document
