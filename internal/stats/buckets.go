package stats

// Commit-count buckets used for the contributor distribution histogram.
var bucketLabels = []string{"0", "1-5", "6-20", "21-50", "51-100", "100+"}

// BucketLabel places a total commit count into exactly one bucket.
func BucketLabel(commits int) string {
	switch {
	case commits <= 0:
		return "0"
	case commits <= 5:
		return "1-5"
	case commits <= 20:
		return "6-20"
	case commits <= 50:
		return "21-50"
	case commits <= 100:
		return "51-100"
	default:
		return "100+"
	}
}

// BucketLabels returns the bucket labels in display order.
func BucketLabels() []string {
	labels := make([]string, len(bucketLabels))
	copy(labels, bucketLabels)
	return labels
}
