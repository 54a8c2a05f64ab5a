package equity

// binom returns C(n, k), or 0 if k is out of [0, n].
func binom(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var result int64 = 1
	for i := 0; i < k; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result
}

// kthCombination returns the k-element subset of {0, ..., n-1}, in
// ascending order, at zero-based lexicographic rank. Rank 0 is
// {0, 1, ..., k-1}.
func kthCombination(n, k int, rank int64) []int {
	c := make([]int, k)
	x := 0
	remaining := rank
	for i := 0; i < k; i++ {
		for {
			count := binom(n-x-1, k-i-1)
			if remaining < count {
				c[i] = x
				x++
				break
			}
			remaining -= count
			x++
		}
	}
	return c
}

// nextCombination advances c in place to the next lexicographic
// k-combination of {0, ..., n-1}. Returns false if c was already the
// last combination.
func nextCombination(c []int, n int) bool {
	k := len(c)
	i := k - 1
	for i >= 0 && c[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	c[i]++
	for j := i + 1; j < k; j++ {
		c[j] = c[i] + (j - i)
	}
	return true
}
