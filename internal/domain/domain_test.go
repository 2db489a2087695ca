package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetric(t *testing.T) {
	ok := Ok("175")
	v, present := ok.Value()
	assert.True(t, ok.Available())
	assert.True(t, present)
	assert.Equal(t, "175", v)
	assert.Equal(t, "175", ok.String())

	missing := Missing()
	assert.False(t, missing.Available())
	assert.Equal(t, Unavailable, missing.String())

	var zero Metric
	assert.Equal(t, missing, zero)
	assert.Equal(t, Unavailable, UserMetrics{}.Get(MetricGists).String())
}

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()

	assert.Equal(t, DefaultRepo, doc["repo"])
	achievements, ok := doc["achievements"].(map[string]any)
	assert.True(t, ok)
	assert.Len(t, achievements, 12)

	doc["repo"] = "changed/repo"
	assert.Equal(t, DefaultRepo, DefaultDocument()["repo"])
}

func TestCatalog(t *testing.T) {
	achievements := DefaultDocument()["achievements"].(map[string]any)
	seen := make(map[string]bool)
	for _, c := range Catalog {
		assert.False(t, seen[c.Title], "duplicate title %q", c.Title)
		seen[c.Title] = true
		assert.NotEmpty(t, c.Body)
		assert.Contains(t, achievements, c.Achievement)
	}
	assert.Len(t, Catalog, 11)
}
