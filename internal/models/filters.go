package models

import "github.com/thenoetrevino/flowforge/internal/types"

// Filters is the board filter record. It is not part of the entity graph; renderers
// read it from the snapshot and pass it to the filter evaluator.
type Filters struct {
	Q        string         `json:"q"`
	Priority Priority       `json:"priority"`
	Member   string         `json:"member"`
	Status   types.ColumnID `json:"status,omitempty"`
	Tags     []string       `json:"tags"`
	Due      DueFilter      `json:"due"`
	Expr     string         `json:"expr,omitempty"`
}

// FilterPatch is a shallow patch for Filters; nil fields are left alone
type FilterPatch struct {
	Q        *string
	Priority *Priority
	Member   *string
	Status   *types.ColumnID
	Tags     *[]string
	Due      *DueFilter
	Expr     *string
}

// IsZero reports whether no filter is active
func (f Filters) IsZero() bool {
	return f.Q == "" && f.Priority == "" && f.Member == "" && f.Status == "" &&
		len(f.Tags) == 0 && f.Due == "" && f.Expr == ""
}

// Merge returns f with every non-nil field of p applied
func (f Filters) Merge(p FilterPatch) Filters {
	out := f
	out.Tags = cloneStrings(f.Tags)
	if p.Q != nil {
		out.Q = *p.Q
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Member != nil {
		out.Member = *p.Member
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Tags != nil {
		out.Tags = cloneStrings(*p.Tags)
		if out.Tags == nil {
			out.Tags = []string{}
		}
	}
	if p.Due != nil {
		out.Due = *p.Due
	}
	if p.Expr != nil {
		out.Expr = *p.Expr
	}
	return out
}
