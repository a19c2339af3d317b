package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rushteam/prodrec/core"
)

// SQLite 是 SQLite 实现的实体存储（modernc.org/sqlite，纯 Go 驱动）。
// 单机持久化场景使用；表结构与上游商品/用户/行为建档服务一致。
type SQLite struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	price       REAL NOT NULL DEFAULT 0,
	rating      REAL NOT NULL DEFAULT 0,
	tags        TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS users (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	username    TEXT NOT NULL UNIQUE,
	preferences TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS user_interactions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id          INTEGER NOT NULL REFERENCES users(id),
	product_id       INTEGER NOT NULL REFERENCES products(id),
	interaction_type TEXT NOT NULL,
	rating           REAL,
	timestamp        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interactions_user ON user_interactions(user_id);
`

// OpenSQLite 打开（必要时创建）数据库并确保表结构存在。
// dsn 形如 "file:prodrec.db" 或 ":memory:"。
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

var _ core.EntityStore = (*SQLite)(nil)

// CreateProduct 写入商品并返回分配的 ID。
func (s *SQLite) CreateProduct(ctx context.Context, p *core.Product) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO products (name, description, category, price, rating, tags) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Category, p.Price, p.Rating, strings.Join(p.Tags, ","),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// CreateUser 写入用户并返回分配的 ID。
func (s *SQLite) CreateUser(ctx context.Context, u *core.User) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, preferences) VALUES (?, ?)`,
		u.Username, u.Preferences,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	u.ID = id
	return id, nil
}

// CreateInteraction 写入行为记录并返回分配的 ID。
func (s *SQLite) CreateInteraction(ctx context.Context, in *core.Interaction) (int64, error) {
	var rating any
	if in.Rating != nil {
		rating = *in.Rating
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO user_interactions (user_id, product_id, interaction_type, rating, timestamp) VALUES (?, ?, ?, ?, ?)`,
		in.UserID, in.ProductID, string(in.Type), rating, ts.UnixNano(),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	in.ID = id
	return id, nil
}

func (s *SQLite) AllInteractions(ctx context.Context) ([]*core.Interaction, error) {
	return s.queryInteractions(ctx,
		`SELECT id, user_id, product_id, interaction_type, rating, timestamp FROM user_interactions ORDER BY id`)
}

func (s *SQLite) InteractionsByUser(ctx context.Context, userID int64) ([]*core.Interaction, error) {
	return s.queryInteractions(ctx,
		`SELECT id, user_id, product_id, interaction_type, rating, timestamp FROM user_interactions WHERE user_id = ? ORDER BY id`,
		userID)
}

func (s *SQLite) queryInteractions(ctx context.Context, query string, args ...any) ([]*core.Interaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*core.Interaction, 0)
	for rows.Next() {
		var (
			in     core.Interaction
			typ    string
			rating sql.NullFloat64
			ts     int64
		)
		if err := rows.Scan(&in.ID, &in.UserID, &in.ProductID, &typ, &rating, &ts); err != nil {
			return nil, err
		}
		in.Type = core.InteractionType(typ)
		if rating.Valid {
			v := rating.Float64
			in.Rating = &v
		}
		in.Timestamp = time.Unix(0, ts)
		out = append(out, &in)
	}
	return out, rows.Err()
}

func (s *SQLite) AllProducts(ctx context.Context) ([]*core.Product, error) {
	return s.queryProducts(ctx,
		`SELECT id, name, description, category, price, rating, tags FROM products ORDER BY id`)
}

func (s *SQLite) TopRatedProducts(ctx context.Context, n int) ([]*core.Product, error) {
	return s.queryProducts(ctx,
		`SELECT id, name, description, category, price, rating, tags FROM products ORDER BY rating DESC, id LIMIT ?`, n)
}

func (s *SQLite) queryProducts(ctx context.Context, query string, args ...any) ([]*core.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*core.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLite) ProductByID(ctx context.Context, id int64) (*core.Product, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, category, price, rating, tags FROM products WHERE id = ?`, id)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, core.ErrStoreNotFound
	}
	return p, err
}

func (s *SQLite) UserByID(ctx context.Context, id int64) (*core.User, error) {
	var u core.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, preferences FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.Preferences)
	if err == sql.ErrNoRows {
		return nil, core.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func scanProduct(scan func(...any) error) (*core.Product, error) {
	var (
		p    core.Product
		tags string
	)
	if err := scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Rating, &tags); err != nil {
		return nil, err
	}
	if tags != "" {
		p.Tags = strings.Split(tags, ",")
	}
	return &p, nil
}
