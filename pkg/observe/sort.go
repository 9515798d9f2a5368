package observe

// stableSort sorts items in place with a top-down merge sort. Equal
// elements keep their relative input order, matching the tie-break used by
// sorted insertion: the right-hand (later) element goes after the left.
func stableSort[T any](items []T, cmp Comparator[T]) {
	if len(items) < 2 {
		return
	}
	buf := make([]T, len(items))
	copy(buf, items)
	mergeSort(buf, items, 0, len(items), cmp)
}

// mergeSort sorts src[lo:hi] into dst[lo:hi]. The recursive calls swap the
// two buffers' roles, so each merge reads runs the level below wrote.
// Callers must start with src and dst holding the same contents.
func mergeSort[T any](src, dst []T, lo, hi int, cmp Comparator[T]) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(dst, src, lo, mid, cmp)
	mergeSort(dst, src, mid, hi, cmp)

	i, j := lo, mid
	for k := lo; k < hi; k++ {
		// Take from the left run on ties to preserve stability.
		if j >= hi || (i < mid && cmp(src[i], src[j]) <= 0) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
	}
}

// insertionIndex returns the position at which item belongs in the sorted
// items: the first index whose element compares greater than item. A new
// item therefore lands after every existing element equal to it, the same
// order the merge produces.
func insertionIndex[T any](items []T, item T, cmp Comparator[T]) int {
	lo, hi := 0, len(items)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(item, items[mid]) < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
