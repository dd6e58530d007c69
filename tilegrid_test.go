// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tilegrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	s := MakeShape(2, 3, 64, 96)
	require.Equal(t, 2*3*64*96, s.Size())
	require.Equal(t, "[2, 3, 64, 96]", s.String())
}

func TestBufferType(t *testing.T) {
	require.Equal(t, "DRAM", DRAM.String())
	require.Equal(t, "L1", L1.String())
	require.True(t, DRAM.IsDRAM())
	require.False(t, L1.IsDRAM())

	bt, err := BufferTypeString("dram")
	require.NoError(t, err)
	require.Equal(t, DRAM, bt)
	_, err = BufferTypeString("HBM")
	require.Error(t, err)
}
