package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"photoboard/src/core/domain"
	"photoboard/src/core/ports"
	"photoboard/src/infra/db"
)

// PostgresRepository implements BoardRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

var _ ports.BoardRepository = (*PostgresRepository)(nil)

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// parseID is the gate for the storage key format: a string that does not
// parse as a UUID never reaches the database.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", domain.NewValidationError("id", "invalid data supplied")
	}
	return parsed.String(), nil
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, nu ports.NewUser) (*domain.User, error) {
	const q = `
		INSERT INTO users (id, name, about, avatar, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, name, about, avatar, email, created_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, uuid.New().String(), nu.Name, nu.About, nu.Avatar, nu.Email, nu.PasswordHash).
		Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("an account with that email already exists")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	const q = `
		SELECT id::text, name, about, avatar, email, created_at
		FROM users
		WHERE id = $1
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, key).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
		SELECT id::text, name, about, avatar, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, email).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	const q = `
		SELECT id::text, name, about, avatar, email, created_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	const q = `
		UPDATE users
		SET name = $2, about = $3
		WHERE id = $1
		RETURNING id::text, name, about, avatar, email, created_at
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, key, name, about).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	const q = `
		UPDATE users
		SET avatar = $2
		WHERE id = $1
		RETURNING id::text, name, about, avatar, email, created_at
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, key, avatar).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

// Cards

const cardColumns = `
	c.id::text,
	c.name,
	c.link,
	c.owner_id::text,
	COALESCE(array_agg(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}'),
	c.created_at
`

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card
	if err := row.Scan(&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.Likes, &card.CreatedAt); err != nil {
		return nil, err
	}
	if card.Likes == nil {
		card.Likes = []string{}
	}
	return &card, nil
}

func (r *PostgresRepository) ListCards(ctx context.Context) ([]domain.Card, error) {
	const q = `
		SELECT ` + cardColumns + `
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

func (r *PostgresRepository) CreateCard(ctx context.Context, ownerID, name, link string) (*domain.Card, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO cards (id, name, link, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, name, link, owner_id::text, created_at
	`
	var card domain.Card
	err = r.pool.QueryRow(ctx, q, uuid.New().String(), name, link, owner).
		Scan(&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	card.Likes = []string{}
	return &card, nil
}

func (r *PostgresRepository) GetCardByID(ctx context.Context, id string) (*domain.Card, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	const q = `
		SELECT ` + cardColumns + `
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`
	card, err := scanCard(r.pool.QueryRow(ctx, q, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("card")
		}
		return nil, err
	}
	return card, nil
}

func (r *PostgresRepository) DeleteCard(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("card")
	}
	return nil
}

// AddLike inserts into the liker set. ON CONFLICT DO NOTHING makes a
// repeated like a no-op rather than an error.
func (r *PostgresRepository) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	cardKey, err := parseID(cardID)
	if err != nil {
		return nil, err
	}
	userKey, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (card_id, user_id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, q, cardKey, userKey); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("card")
		}
		return nil, err
	}
	return r.GetCardByID(ctx, cardKey)
}

// RemoveLike deletes from the liker set. Removing an absent entry is a
// no-op; the card lookup afterwards still reports a missing card.
func (r *PostgresRepository) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	cardKey, err := parseID(cardID)
	if err != nil {
		return nil, err
	}
	userKey, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	const q = `DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`
	if _, err := r.pool.Exec(ctx, q, cardKey, userKey); err != nil {
		return nil, err
	}
	return r.GetCardByID(ctx, cardKey)
}
