package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketLabel(t *testing.T) {
	testCases := []struct {
		commits  int
		expected string
	}{
		{0, "0"},
		{1, "1-5"},
		{5, "1-5"},
		{6, "6-20"},
		{20, "6-20"},
		{21, "21-50"},
		{50, "21-50"},
		{51, "51-100"},
		{100, "51-100"},
		{101, "100+"},
		{5000, "100+"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, BucketLabel(tc.commits), "commits=%d", tc.commits)
	}
}

func TestBucketLabelsOrder(t *testing.T) {
	assert.Equal(t, []string{"0", "1-5", "6-20", "21-50", "51-100", "100+"}, BucketLabels())
}
