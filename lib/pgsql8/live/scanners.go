package live

import (
	"database/sql"
	"fmt"
)

type maybeStr struct {
	str *string
}

func (m *maybeStr) Scan(value interface{}) error {
	s := sql.NullString{}
	err := s.Scan(value)
	if err != nil {
		return err
	}
	*m.str = s.String
	return nil
}

// For reasons unknown, pgx doesn't know how to scan a pgsql char into a go string
type char2str struct {
	str *string
}

func (c *char2str) Scan(value interface{}) error {
	switch v := value.(type) {
	case []uint8:
		*c.str = string(v)
	case string:
		*c.str = v
	default:
		return fmt.Errorf("unexpected underlying pgx type %T (%v) for a pgsql char", v, v)
	}
	return nil
}
