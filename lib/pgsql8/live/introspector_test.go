package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt2Vector(t *testing.T) {
	cols, err := parseInt2Vector("1 3 0")
	assert.NoError(t, err)
	assert.Equal(t, []int16{1, 3, 0}, cols)

	cols, err = parseInt2Vector("")
	assert.NoError(t, err)
	assert.Empty(t, cols)

	_, err = parseInt2Vector("1 x")
	assert.Error(t, err)
}

func TestChar2Str(t *testing.T) {
	var s string
	scanner := &char2str{&s}

	assert.NoError(t, scanner.Scan([]uint8("f")))
	assert.Equal(t, "f", s)

	assert.NoError(t, scanner.Scan("p"))
	assert.Equal(t, "p", s)

	assert.Error(t, scanner.Scan(42))
}

func TestMaybeStr(t *testing.T) {
	var s string
	scanner := &maybeStr{&s}

	assert.NoError(t, scanner.Scan("{app=arw/admin}"))
	assert.Equal(t, "{app=arw/admin}", s)

	// NULL relacl scans to the empty string
	s = "sentinel"
	assert.NoError(t, scanner.Scan(nil))
	assert.Equal(t, "", s)
}
