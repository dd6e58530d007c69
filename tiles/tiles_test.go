// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSizeInBytes(t *testing.T) {
	require.Equal(t, uint64(4096), SizeInBytes(dtypes.Float32))
	require.Equal(t, uint64(2048), SizeInBytes(dtypes.Float16))
	require.Equal(t, uint64(2048), SizeInBytes(dtypes.BFloat16))
}

func TestCountForShape(t *testing.T) {
	count, err := CountForShape(tilegrid.MakeShape(2, 3, 64, 96))
	require.NoError(t, err)
	require.Equal(t, 2*3*2*3, count)

	count, err = CountForShape(tilegrid.MakeShape(0, 1, 32, 32))
	require.NoError(t, err)
	require.Equal(t, 0, count)

	_, err = CountForShape(tilegrid.MakeShape(1, 1, 33, 32))
	require.Error(t, err)
	require.True(t, errors.Is(err, tilegrid.ErrPrecondition))

	_, err = CountForShape(tilegrid.MakeShape(1, 1, 32, 16))
	require.True(t, errors.Is(err, tilegrid.ErrPrecondition))
}
