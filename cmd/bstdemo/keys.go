package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	bst "github.com/tuanngocfun/Binary-Search-Tree"
)

// parseKeys parses a comma-separated list of integers. Blank entries are skipped.
func parseKeys(s string) ([]int, error) {
	var keys []int
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		k, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "key %v", i)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// buildTree inserts keys in order, then deletes each of dels once.
func buildTree(keys, dels []int, limit int) (*bst.Tree[int], error) {
	tree, err := bst.OrderedFromKeys(keys, bst.WithLimit(limit))
	if err != nil {
		return nil, err
	}
	for _, k := range dels {
		tree.Delete(k)
	}
	return tree, nil
}
