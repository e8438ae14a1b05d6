package transfer

import (
	"context"
	"io"

	"github.com/thenoetrevino/flowforge/internal/models"
	"github.com/thenoetrevino/flowforge/internal/types"
)

// Target is the part of the store an import writes through. ImportWith runs
// build against the current snapshot under the store's commit lock.
type Target interface {
	GetState() models.Snapshot
	ImportWith(ctx context.Context, build func(cur models.Snapshot) models.Snapshot) bool
}

// Options controls how a payload is applied
type Options struct {
	// Overwrite replaces the whole entity graph with the payload. Filters and
	// snapshot metadata are kept.
	Overwrite bool
}

// Import parses a document in the given format and applies it. Nothing is
// written when the document fails validation.
func Import(ctx context.Context, target Target, r io.Reader, format string, opts Options) (models.Snapshot, error) {
	codec, err := CodecFor(format)
	if err != nil {
		return models.Snapshot{}, err
	}
	p, err := codec.Parse(r)
	if err != nil {
		return models.Snapshot{}, err
	}
	return Apply(ctx, target, p, opts), nil
}

// Apply writes a parsed payload into the store. In merge mode each payload
// entity replaces a current entity with the same id, or is appended when new.
// The merge reads and writes the store in one commit.
func Apply(ctx context.Context, target Target, p *Payload, opts Options) models.Snapshot {
	p.normalize()
	target.ImportWith(ctx, func(cur models.Snapshot) models.Snapshot {
		return merge(cur, p, opts)
	})
	return target.GetState()
}

func merge(cur models.Snapshot, p *Payload, opts Options) models.Snapshot {
	if opts.Overwrite {
		return models.Snapshot{
			Workspaces: []models.Workspace{p.Workspace},
			Projects:   p.Projects,
			Boards:     p.Boards,
			Tasks:      p.Tasks,
			Filters:    cur.Filters,
			Meta:       cur.Meta,
		}
	}

	next := cur
	next.Workspaces = upsert(cur.Workspaces, []models.Workspace{p.Workspace},
		func(w models.Workspace) types.WorkspaceID { return w.ID })
	next.Projects = upsert(cur.Projects, p.Projects,
		func(pr models.Project) types.ProjectID { return pr.ID })
	next.Boards = upsert(cur.Boards, p.Boards,
		func(b models.Board) types.BoardID { return b.ID })
	next.Tasks = upsert(cur.Tasks, p.Tasks,
		func(t models.Task) types.TaskID { return t.ID })
	return next
}

// upsert returns a new slice holding cur with incoming merged in by id
func upsert[T any, K comparable](cur, incoming []T, key func(T) K) []T {
	out := make([]T, len(cur), len(cur)+len(incoming))
	copy(out, cur)

	at := make(map[K]int, len(out))
	for i, v := range out {
		at[key(v)] = i
	}
	for _, v := range incoming {
		if i, ok := at[key(v)]; ok {
			out[i] = v
			continue
		}
		at[key(v)] = len(out)
		out = append(out, v)
	}
	return out
}
