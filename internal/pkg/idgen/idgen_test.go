package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/brainmon-api/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("enc")

	assert.Equal(t, "enc_1", gen.Generate())
	assert.Equal(t, "enc_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("enc")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "enc_"))
	assert.NotEqual(t, first, second)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}
