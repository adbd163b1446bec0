package chromosome

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsX(t *testing.T) {
	assert.True(t, IsX("X"))
	assert.True(t, IsX("x"))
	assert.True(t, IsX("chrX"))
	assert.False(t, IsX("XY"))
	assert.False(t, IsX("1"))
	assert.False(t, IsX("chr"))
}

func TestCompare(t *testing.T) {
	contigs := []string{"GL000220.1", "X", "chr10", "2", "MT", "Y", "1", "chr2"}
	sort.SliceStable(contigs, func(i, j int) bool { return Compare(contigs[i], contigs[j]) < 0 })

	assert.Equal(t, []string{"1", "2", "chr2", "chr10", "X", "Y", "MT", "GL000220.1"}, contigs)
	assert.Equal(t, 0, Compare("chr7", "7"))
}

func TestIsValidHumanChromosome(t *testing.T) {
	for _, c := range []string{"1", "22", "X", "chrY", "M"} {
		assert.True(t, IsValidHumanChromosome(c), c)
	}
	for _, c := range []string{"0", "23", "GL000220.1", ""} {
		assert.False(t, IsValidHumanChromosome(c), c)
	}
}
