package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocsvlab/domain/core"
)

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore(0, nil)
	s := newSession()
	st.Put(s)

	got, err := st.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	require.NoError(t, st.Delete(s.ID()))
	_, err = st.Get(s.ID())
	assert.True(t, core.IsNotFoundError(err))
	assert.True(t, core.IsNotFoundError(st.Delete(s.ID())))
}

func TestMemoryStoreEvictsOldest(t *testing.T) {
	st := NewMemoryStore(2, nil)
	a, b, c := newSession(), newSession(), newSession()
	st.Put(a)
	st.Put(b)
	st.Put(a)
	st.Put(c)

	assert.Equal(t, 2, st.Len())
	_, err := st.Get(a.ID())
	assert.Error(t, err, "oldest session should be evicted")
	_, err = st.Get(b.ID())
	assert.NoError(t, err)
	_, err = st.Get(c.ID())
	assert.NoError(t, err)
}
