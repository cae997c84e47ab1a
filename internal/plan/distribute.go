package plan

// Distribute splits totalUsers evenly across count runner slots. When the
// split is uneven the earlier slots receive the extra unit, so the result
// is deterministic for a given runner order and always sums to totalUsers.
// Returns nil when count < 1.
func Distribute(count, totalUsers int) []int {
	if count < 1 {
		return nil
	}
	base := totalUsers / count
	remainder := totalUsers % count
	shares := make([]int, count)
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}
