package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	testCases := []struct {
		in       string
		expected []int
	}{
		{"", nil},
		{"5", []int{5}},
		{"13, 6,15,,-2", []int{13, 6, 15, -2}},
	}
	for _, tc := range testCases {
		got, err := parseKeys(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.expected, got, tc.in)
	}

	_, err := parseKeys("1,two,3")
	require.ErrorContains(t, err, "key 1")
}

func TestBuildTree(t *testing.T) {
	tree, err := buildTree([]int{5, 3, 8, 3}, []int{3, 9}, 0)
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())
	require.NoError(t, tree.Check())

	_, err = buildTree([]int{1, 2, 3}, nil, 2)
	require.Error(t, err)
}

func TestWriteStats(t *testing.T) {
	tree, err := buildTree([]int{13, 6, 15, 17, 20, 9, 4, 3, 7, 2, 18}, nil, 0)
	require.NoError(t, err)
	var buf bytes.Buffer
	writeStats(&buf, tree)
	require.Equal(t, "nodes:  11\nheight: 5\nmin:    2\nmax:    20\n", buf.String())
}
