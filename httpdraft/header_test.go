package httpdraft

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderSet_AdditionForms(t *testing.T) {
	t.Run("given all addition forms, then they append identically and in order", func(t *testing.T) {
		set := &HeaderSet{}
		set.Add("A", "1").
			AddPair(Pair("B", "2")).
			AddPair(Header{Name: "C", Value: "3"})

		assert.Equal(t, []Header{
			{Name: "A", Value: "1"},
			{Name: "B", Value: "2"},
			{Name: "C", Value: "3"},
		}, set.snapshot())
	})
}

func TestHeaderSet_Snapshot(t *testing.T) {
	t.Run("given an empty set, then snapshot is nil", func(t *testing.T) {
		set := &HeaderSet{}
		assert.Nil(t, set.snapshot())
	})

	t.Run("given additions after snapshot, then the snapshot is unchanged", func(t *testing.T) {
		set := &HeaderSet{}
		set.Add("A", "1")

		snap := set.snapshot()
		set.Add("B", "2")

		assert.Equal(t, []Header{{Name: "A", Value: "1"}}, snap)
	})
}

func TestHeaderSet_GeneratedRequestID(t *testing.T) {
	t.Run("given a generated request id, then it is a valid UUID in sequence", func(t *testing.T) {
		set := &HeaderSet{}
		set.Add("A", "1").
			GeneratedRequestID().
			Add("B", "2")

		headers := set.snapshot()
		require.Len(t, headers, 3)

		assert.Equal(t, RequestIDHeader, headers[1].Name)
		_, err := uuid.Parse(headers[1].Value)
		assert.NoError(t, err)

		assert.Equal(t, Header{Name: "A", Value: "1"}, headers[0])
		assert.Equal(t, Header{Name: "B", Value: "2"}, headers[2])
	})

	t.Run("given two generated ids, then they differ", func(t *testing.T) {
		set := &HeaderSet{}
		set.GeneratedRequestID().GeneratedRequestID()

		headers := set.snapshot()
		require.Len(t, headers, 2)
		assert.NotEqual(t, headers[0].Value, headers[1].Value)
	})
}

func TestPair(t *testing.T) {
	t.Run("given a name and value, then Pair builds the structural pair", func(t *testing.T) {
		assert.Equal(t, Header{Name: "Accept", Value: "text/plain"}, Pair("Accept", "text/plain"))
	})
}
