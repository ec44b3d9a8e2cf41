package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mesa-promote/internal/core/domain"
)

func TestCoverageGapsMergesConsecutiveHours(t *testing.T) {
	start := time.Date(2024, 3, 9, 5, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)
	processed := []time.Time{start, start.Add(time.Hour), start.Add(4 * time.Hour)}

	gaps := coverageGaps(start, end, processed)
	assert.Equal(t, []domain.Gap{
		{From: start.Add(2 * time.Hour), To: start.Add(4 * time.Hour)},
		{From: start.Add(5 * time.Hour), To: end},
	}, gaps)
}

func TestCoverageGapsFullyCovered(t *testing.T) {
	start := time.Date(2024, 3, 9, 5, 0, 0, 0, time.UTC)
	var processed []time.Time
	for i := 0; i < 24; i++ {
		processed = append(processed, start.Add(time.Duration(i)*time.Hour))
	}
	assert.Empty(t, coverageGaps(start, start.Add(24*time.Hour), processed))
}
