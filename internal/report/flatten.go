package report

import "shopcat/extractor/internal/domain"

// MaxDepth returns the deepest level present in the tree (root = 0).
func MaxDepth(root *domain.Category) int {
	deepest := root.Depth
	for _, child := range root.Children {
		if d := MaxDepth(child); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Flatten walks the tree pre-order and emits one row per node,
// intermediates included. Every row has the same number of level
// columns, sized to the deepest node, so the report stays rectangular.
func Flatten(root *domain.Category) []domain.Row {
	if root == nil {
		return nil
	}

	width := MaxDepth(root) + 1
	rows := make([]domain.Row, 0)

	var walk func(node *domain.Category, path []string)
	walk = func(node *domain.Category, path []string) {
		levels := make([]string, width)
		copy(levels, path)
		levels[node.Depth] = node.Name

		rows = append(rows, domain.Row{
			Index:      len(rows) + 1,
			Levels:     levels,
			CategoryID: node.ID,
			URL:        node.URL,
		})

		childPath := append(path[:len(path):len(path)], node.Name)
		for _, child := range node.Children {
			walk(child, childPath)
		}
	}
	walk(root, nil)

	return rows
}

// LevelCounts returns how many categories sit at each depth. The
// per-level subtotal block of the report is built from this.
func LevelCounts(root *domain.Category) map[int]int {
	counts := make(map[int]int)

	var walk func(node *domain.Category)
	walk = func(node *domain.Category) {
		counts[node.Depth]++
		for _, child := range node.Children {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}

	return counts
}
