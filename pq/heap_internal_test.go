// SPDX-License-Identifier: MIT

package pq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInvariants_RandomOperations drives a heap through a seeded mix of
// Insert, DecreaseKey and ExtractMin and checks structure after every step.
func TestInvariants_RandomOperations(t *testing.T) {
	const capacity = 64
	rng := rand.New(rand.NewSource(7))
	h := New(capacity)

	for step := 0; step < 2000; step++ {
		id := rng.Intn(capacity)
		switch op := rng.Intn(3); {
		case op == 0 && h.slots[id].state == Absent:
			require.NoError(t, h.Insert(id, rng.Float64()*100))
		case op == 1 && h.Contains(id):
			cur, err := h.Priority(id)
			require.NoError(t, err)
			require.NoError(t, h.DecreaseKey(id, cur*rng.Float64()))
		case op == 2 && !h.IsEmpty():
			_, err := h.ExtractMin()
			require.NoError(t, err)
		}
		require.NoError(t, h.verify(), "step %d", step)
	}
}

func TestInvariants_SwapKeepsSlots(t *testing.T) {
	h := New(5)
	for id, p := range []float64{5, 4, 3, 2, 1} {
		require.NoError(t, h.Insert(id, p))
		require.NoError(t, h.verify())
	}
	// Smallest inserted last must have bubbled to the root.
	require.Equal(t, 4, h.entries[0].id)
	require.Equal(t, 0, h.slots[4].pos)
}

func TestInvariants_ExtractMarksSettled(t *testing.T) {
	h := New(2)
	require.NoError(t, h.Insert(0, 1))
	require.NoError(t, h.Insert(1, 2))

	id, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, 0, id)
	require.Equal(t, Settled, h.slots[0].state)
	require.Equal(t, -1, h.slots[0].pos)
	require.Equal(t, slot{state: Present, pos: 0}, h.slots[1])
	require.NoError(t, h.verify())
}

func TestInvariants_DecreaseKeyToRoot(t *testing.T) {
	h := New(8)
	for id := 0; id < 8; id++ {
		require.NoError(t, h.Insert(id, float64(10+id)))
	}
	require.NoError(t, h.DecreaseKey(7, 0.5))
	require.NoError(t, h.verify())
	require.Equal(t, 7, h.entries[0].id)
}
