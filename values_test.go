package picoarg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopBytes(t *testing.T) {
	p := newParser(declaration{'b', true})
	require.NoError(t, p.Parse([]string{"prog", "-b100g"}))
	b, err := p.PopBytes('b')
	require.NoError(t, err)
	assert.EqualValues(t, 100e9, b)
	assert.EqualValues(t, 100e9, b.Int64())
}

func TestPopBytesAbsent(t *testing.T) {
	p := newParser(declaration{'b', true})
	require.NoError(t, p.Parse([]string{"prog"}))
	_, err := p.PopBytes('b')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "option 'b'")
}

func TestPopDuration(t *testing.T) {
	p := newParser(declaration{'t', true})
	require.NoError(t, p.Parse([]string{"prog", "-t2m30s"}))
	d, err := p.PopDuration('t')
	require.NoError(t, err)
	assert.EqualValues(t, 150*time.Second, d)
}

func TestPopInt(t *testing.T) {
	p := newParser(declaration{'n', true})
	require.NoError(t, p.Parse([]string{"prog", "-n42", "-nx"}))
	n, err := p.PopInt('n')
	require.NoError(t, err)
	assert.EqualValues(t, 42, n)
	_, err = p.PopInt('n')
	assert.Error(t, err)
}
