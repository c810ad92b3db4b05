package catalog

// RatingStats is the running average of individually submitted ratings.
// Avg is the arithmetic mean of Count submitted values; when Count is zero,
// Avg is zero.
type RatingStats struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// Add folds a single rating value into the running average and returns the
// new stats. The receiver is not mutated; callers replace the stored value.
// Contributions are permanent: there is no operation to revise or remove a
// previously submitted rating.
func (r RatingStats) Add(value int) RatingStats {
	count := r.Count + 1
	return RatingStats{
		Avg:   (r.Avg*float64(r.Count) + float64(value)) / float64(count),
		Count: count,
	}
}
