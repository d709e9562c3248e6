package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
	"treehouse/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// MenuRepository lists one catalog, public or members, in display order.
type MenuRepository interface {
	ListItems(ctx context.Context, members bool) ([]models.MenuItem, error)
}

type StaticMenuRepository struct{}

func NewStaticMenuRepository() *StaticMenuRepository {
	return &StaticMenuRepository{}
}

func (r *StaticMenuRepository) ListItems(ctx context.Context, members bool) ([]models.MenuItem, error) {
	source := publicMenu
	if members {
		source = membersMenu
	}
	items := make([]models.MenuItem, len(source))
	copy(items, source)
	return items, nil
}

// PostgresMenuRepository reads the catalog seeded by the menu_items migration.
type PostgresMenuRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMenuRepository(db *pgxpool.Pool) *PostgresMenuRepository {
	return &PostgresMenuRepository{db: db}
}

func (r *PostgresMenuRepository) ListItems(ctx context.Context, members bool) ([]models.MenuItem, error) {
	query := `SELECT id, name, description, image, category, is_members
	          FROM menu_items WHERE is_members = $1 ORDER BY position`

	rows, err := r.db.Query(ctx, query, members)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Image, &item.Category, &item.IsMembers); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CachedMenuRepository serves catalogs from Redis and falls through to next
// on a miss. Cache errors are logged and never fail the read.
type CachedMenuRepository struct {
	next MenuRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedMenuRepository(next MenuRepository, rdb *redis.Client, ttl time.Duration) *CachedMenuRepository {
	return &CachedMenuRepository{next: next, rdb: rdb, ttl: ttl}
}

func menuCacheKey(members bool) string {
	if members {
		return "menu_items_members"
	}
	return "menu_items_public"
}

func (r *CachedMenuRepository) ListItems(ctx context.Context, members bool) ([]models.MenuItem, error) {
	key := menuCacheKey(members)

	cached, err := r.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var items []models.MenuItem
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
		log.Printf("Discarding unreadable menu cache entry %s", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Menu cache read failed: %v", err)
	}

	items, err := r.next.ListItems(ctx, members)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
			log.Printf("Menu cache write failed: %v", err)
		}
	}
	return items, nil
}

func (r *CachedMenuRepository) Invalidate(ctx context.Context) error {
	return InvalidateMenuCache(ctx, r.rdb)
}

// InvalidateMenuCache drops both cached catalogs. Run it whenever the
// menu_items table is reseeded.
func InvalidateMenuCache(ctx context.Context, rdb *redis.Client) error {
	return rdb.Del(ctx, menuCacheKey(false), menuCacheKey(true)).Err()
}
