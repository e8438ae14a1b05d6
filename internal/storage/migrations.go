package storage

import "fmt"

// CurrentVersion is the schema version written by this build
const CurrentVersion = 2

// Migration upgrades the raw data object of a stored snapshot by one version.
// Migrations work on decoded JSON rather than on models.Snapshot because older
// layouts do not fit the current types.
type Migration func(data map[string]any) (map[string]any, error)

// migrations is keyed by the version being migrated from
var migrations = map[int]Migration{
	0: migrateV0toV1,
	1: migrateV1toV2,
}

// Migrate applies the chain from version up to CurrentVersion
func Migrate(version int, data map[string]any) (map[string]any, error) {
	if version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d > %d", ErrFutureVersion, version, CurrentVersion)
	}
	for version < CurrentVersion {
		m, ok := migrations[version]
		if !ok {
			return nil, fmt.Errorf("%w: no migration from version %d", ErrMigration, version)
		}
		next, err := m(data)
		if err != nil {
			return nil, fmt.Errorf("%w: from version %d: %w", ErrMigration, version, err)
		}
		data = next
		version++
	}
	return data, nil
}

// migrateV0toV1 makes sure every top-level collection exists
func migrateV0toV1(data map[string]any) (map[string]any, error) {
	out := copyObject(data)
	for _, key := range []string{"workspaces", "projects", "boards", "tasks"} {
		if _, ok := out[key].([]any); !ok {
			out[key] = []any{}
		}
	}
	for _, key := range []string{"filters", "meta"} {
		if _, ok := out[key].(map[string]any); !ok {
			out[key] = map[string]any{}
		}
	}
	return out, nil
}

// migrateV1toV2 moves the legacy task "columnId" into "status" and fills in the
// child lists and filter tags that version 1 allowed to be absent
func migrateV1toV2(data map[string]any) (map[string]any, error) {
	out := copyObject(data)

	tasks, _ := out["tasks"].([]any)
	migrated := make([]any, 0, len(tasks))
	for i, raw := range tasks {
		task, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("task %d is not an object", i)
		}
		task = copyObject(task)
		if colID, ok := task["columnId"].(string); ok {
			if status, _ := task["status"].(string); status == "" {
				task["status"] = colID
			}
			delete(task, "columnId")
		}
		migrated = append(migrated, task)
	}
	out["tasks"] = migrated

	ensureChildList(out, "workspaces", "projects")
	ensureChildList(out, "projects", "boards")
	ensureChildList(out, "boards", "columns")

	filters, _ := out["filters"].(map[string]any)
	filters = copyObject(filters)
	if _, ok := filters["tags"].([]any); !ok {
		filters["tags"] = []any{}
	}
	out["filters"] = filters

	return out, nil
}

// ensureChildList gives every object in out[collection] an array under field
func ensureChildList(out map[string]any, collection, field string) {
	items, _ := out[collection].([]any)
	fixed := make([]any, 0, len(items))
	for _, raw := range items {
		obj, ok := raw.(map[string]any)
		if !ok {
			fixed = append(fixed, raw)
			continue
		}
		obj = copyObject(obj)
		if _, ok := obj[field].([]any); !ok {
			obj[field] = []any{}
		}
		fixed = append(fixed, obj)
	}
	out[collection] = fixed
}

func copyObject(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
