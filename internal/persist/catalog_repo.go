package persist

import (
	"context"
	"time"
)

// EntityRecord is one logged-entity row from the catalog.
type EntityRecord struct {
	Name      string
	Archetype string
	SceneName string
	LoggedAt  time.Time
}

// CatalogRepo journals what a session declared and published, for post-hoc
// inspection. It implements gui.Journal.
type CatalogRepo struct {
	db *DB
}

func NewCatalogRepo(db *DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) WindowCreated(ctx context.Context, name string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO catalog_windows (name) VALUES ($1)`, name)
	return err
}

func (r *CatalogRepo) SceneCreated(ctx context.Context, name string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO catalog_scenes (name) VALUES ($1)`, name)
	return err
}

// SceneBound stamps the first matching unbound scene row; rebinding updates
// the same row, mirroring the registry's overwrite semantics.
func (r *CatalogRepo) SceneBound(ctx context.Context, scene, window string) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE catalog_scenes SET window_name = $2, bound_at = now()
		 WHERE id = (SELECT min(id) FROM catalog_scenes WHERE name = $1)`,
		scene, window)
	return err
}

func (r *CatalogRepo) EntityLogged(ctx context.Context, entity, archetype, scene string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO catalog_entities (name, archetype, scene_name) VALUES ($1, $2, $3)`,
		entity, archetype, scene)
	return err
}

// EntitiesInScene lists every entity logged into a scene, oldest first.
func (r *CatalogRepo) EntitiesInScene(ctx context.Context, scene string) ([]EntityRecord, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT name, archetype, scene_name, logged_at
		 FROM catalog_entities WHERE scene_name = $1 ORDER BY id`, scene)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EntityRecord
	for rows.Next() {
		var rec EntityRecord
		if err := rows.Scan(&rec.Name, &rec.Archetype, &rec.SceneName, &rec.LoggedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
