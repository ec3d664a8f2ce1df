package live

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

type Connection struct {
	conn *pgxpool.Pool
}

// NewConnection connects using a raw libpq connection string or URI,
// passed through to the driver untouched.
func NewConnection(dsn string) (*Connection, error) {
	conn, err := pgxpool.Connect(context.Background(), dsn)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to postgres database")
	}
	return &Connection{conn}, nil
}

func (c *Connection) Disconnect() {
	c.conn.Close()
}

func (c *Connection) Query(query string, params ...interface{}) (pgx.Rows, error) {
	return c.conn.Query(context.TODO(), query, params...)
}
