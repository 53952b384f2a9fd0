package domain

// NodeState tracks a category through the traversal.
type NodeState string

const (
	StatePending   NodeState = "pending"
	StateFetched   NodeState = "fetched"
	StateExtracted NodeState = "extracted"
	StateRecursing NodeState = "recursing"
	StateLeaf      NodeState = "leaf"
	StateFailed    NodeState = "failed"
)

// Category is one page in the storefront's category-browsing hierarchy.
// Children are owned by their parent and kept in page extraction order.
type Category struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	URL           string      `json:"url"`
	Depth         int         `json:"depth"` // 0 = root
	State         NodeState   `json:"state"`
	Children      []*Category `json:"children,omitempty"`
	FailureReason string      `json:"failure_reason,omitempty"`
}

// AddChild appends a fresh child node one level below c.
func (c *Category) AddChild(id, name, url string) *Category {
	child := &Category{
		ID:    id,
		Name:  name,
		URL:   url,
		Depth: c.Depth + 1,
		State: StatePending,
	}
	c.Children = append(c.Children, child)
	return child
}

// Warning records a per-node problem that did not abort the run.
type Warning struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// Result is the outcome of one crawl run. Root is fully populated on a
// completed run and partially populated on a cancelled one.
type Result struct {
	Root         *Category `json:"root"`
	Warnings     []Warning `json:"warnings,omitempty"`
	NodesVisited int       `json:"nodes_visited"`
	Cancelled    bool      `json:"cancelled"`
}
