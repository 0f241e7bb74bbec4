package fixture

// mergeTrees layers src onto dst and returns a new tree. Keyed structures
// present on both sides are merged recursively; any other value in src,
// sequences and deferred values included, replaces the one in dst. Neither
// input is modified.
func mergeTrees(dst, src Tree) Tree {
	if dst == nil && src == nil {
		return nil
	}

	result := make(Tree, len(dst)+len(src))
	for k, v := range dst {
		result[k] = v
	}

	for k, sv := range src {
		srcTree, srcIsTree := sv.(Tree)
		dstTree, dstIsTree := result[k].(Tree)
		if srcIsTree && dstIsTree {
			result[k] = mergeTrees(dstTree, srcTree)
			continue
		}
		if srcIsTree {
			// Copy so a later merge into the result cannot reach back into src.
			result[k] = mergeTrees(nil, srcTree)
			continue
		}
		result[k] = sv
	}

	return result
}

// mergeAll folds layers left to right; later layers win.
func mergeAll(layers ...Tree) Tree {
	var result Tree
	for _, layer := range layers {
		result = mergeTrees(result, layer)
	}
	return result
}
