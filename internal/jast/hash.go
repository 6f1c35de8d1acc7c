package jast

import (
	"unicode/utf16"
)

// hashNoise is the multiplier of the left-to-right mix.
const hashNoise int32 = 31

// Hash computes a structural hash of the subtree rooted in n.
//
// The kind, name and value of every node are mixed with the hashes of its children
// slot by slot, in schema order: h = 31*h + x with int32 wrap-around. An absent
// single slot contributes 0, a list slot contributes its list hash (1, then 31*h + e
// for each element). Comments contribute nothing, so trees that differ only in
// comments hash equally.
func Hash(n *Node) int32 {
	if n == nil || n.kind.IsComment() {
		return 0
	}

	h := stringHash(n.kind.String())
	h = hashNoise*h + stringHash(n.name)
	h = hashNoise*h + stringHash(n.value)
	for _, s := range schemaOf(n.kind) {
		if !s.many {
			h = hashNoise*h + Hash(n.Child(s.role))
			continue
		}

		lh := int32(1)
		for _, c := range n.children {
			if c.role == s.role {
				lh = hashNoise*lh + Hash(c)
			}
		}
		h = hashNoise*h + lh
	}

	return h
}

// stringHash mirrors the host language string hash over UTF-16 code units.
func stringHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = hashNoise*h + int32(u)
	}
	return h
}

// Equal reports structural equality of two subtrees: same kind, name, value and
// the same children in every slot, ignoring comments. Roles of a and b themselves
// are not compared, so a node can be matched against a twin from another parse.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind.IsComment() && b.kind.IsComment() {
		return true
	}
	if a.kind != b.kind || a.name != b.name || a.value != b.value {
		return false
	}

	for _, s := range schemaOf(a.kind) {
		ac := a.ChildrenOf(s.role)
		bc := b.ChildrenOf(s.role)
		if len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if !Equal(ac[i], bc[i]) {
				return false
			}
		}
	}

	return true
}

// IndexOf locates target in list: by identity first, then by structural equality,
// returning the first structural match. It returns -1 when target is absent.
func IndexOf(list []*Node, target *Node) int {
	if i := identityIndex(list, target); i >= 0 {
		return i
	}

	return structuralIndex(list, target, false)
}

// LastIndexOf is like [IndexOf] but picks the last structural match.
func LastIndexOf(list []*Node, target *Node) int {
	if i := identityIndex(list, target); i >= 0 {
		return i
	}

	return structuralIndex(list, target, true)
}

func identityIndex(list []*Node, target *Node) int {
	for i, n := range list {
		if n == target {
			return i
		}
	}

	return -1
}

func structuralIndex(list []*Node, target *Node, last bool) int {
	if target == nil {
		return -1
	}

	want := Hash(target)
	res := -1
	for i, n := range list {
		if Hash(n) != want || !Equal(n, target) {
			continue
		}
		if !last {
			return i
		}
		res = i
	}

	return res
}
