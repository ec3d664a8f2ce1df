package live

import (
	"strconv"
	"strings"

	"github.com/jackc/pgtype"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=introspector.go -destination=mock_introspector.go -package=live Introspector

// Introspector reads one database's schema structure from the system
// catalogs. The builder composes these calls into a snapshot.
type Introspector interface {
	GetSchemas() ([]SchemaEntry, error)
	GetTables(schema pgtype.OID) ([]TableEntry, error)
	GetColumns(table pgtype.OID, qualifiedName string) ([]ColumnEntry, error)
	GetPrimaryKeys(table pgtype.OID) ([]KeyConstraintEntry, error)
	GetUniqueKeys(table pgtype.OID) ([]KeyConstraintEntry, error)
	GetChecks(table pgtype.OID) ([]CheckEntry, error)
	GetForeignKeys(table pgtype.OID) ([]ForeignKeyEntry, error)
	GetIndexes(table pgtype.OID) ([]IndexEntry, error)
	GetTriggers(relation pgtype.OID) ([]TriggerEntry, error)
	GetViews(schema pgtype.OID) ([]ViewEntry, error)
	GetFunctions(schema pgtype.OID) ([]FunctionEntry, error)
}

type LiveIntrospector struct {
	conn *Connection
}

var _ Introspector = &LiveIntrospector{}

func NewIntrospector(conn *Connection) *LiveIntrospector {
	return &LiveIntrospector{conn}
}

func (li *LiveIntrospector) GetSchemas() ([]SchemaEntry, error) {
	res, err := li.conn.Query(`
		SELECT oid, nspname
		FROM pg_namespace
		WHERE nspname != 'information_schema'
			AND nspname NOT LIKE 'pg_%'
		ORDER BY nspname;
	`)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []SchemaEntry{}
	for res.Next() {
		entry := SchemaEntry{}
		if err := res.Scan(&entry.Oid, &entry.Name); err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetTables(schema pgtype.OID) ([]TableEntry, error) {
	res, err := li.conn.Query(`
		SELECT c.oid, a.rolname, c.relname, c.relacl::text
		FROM pg_class c
		JOIN pg_authid a ON a.oid = c.relowner
		WHERE c.relnamespace = $1
			AND c.relkind = 'r'
		ORDER BY c.relname;
	`, schema)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []TableEntry{}
	for res.Next() {
		entry := TableEntry{}
		if err := res.Scan(&entry.Oid, &entry.Owner, &entry.Name, &maybeStr{&entry.ACL}); err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetColumns(table pgtype.OID, qualifiedName string) ([]ColumnEntry, error) {
	// adsrc is the historical default expression source; the base type of
	// an array column comes from typelem
	res, err := li.conn.Query(`
		SELECT a.attnum, a.attname, COALESCE(bt.typname, t.typname), a.attnotnull,
			d.adsrc, pg_get_serial_sequence($2, a.attname),
			a.attndims, a.atttypmod
		FROM pg_attribute a
		JOIN pg_type t ON t.oid = a.atttypid
		LEFT OUTER JOIN pg_type bt ON bt.oid = t.typelem
		LEFT OUTER JOIN pg_attrdef d ON d.adrelid = a.attrelid AND d.adnum = a.attnum
		WHERE a.attrelid = $1
			AND a.attisdropped = FALSE
			AND a.attnum >= 1
		ORDER BY a.attnum;
	`, table, qualifiedName)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []ColumnEntry{}
	for res.Next() {
		entry := ColumnEntry{}
		err := res.Scan(
			&entry.Position, &entry.Name, &entry.Type, &entry.NotNull,
			&maybeStr{&entry.Default}, &maybeStr{&entry.SequenceName},
			&entry.NDims, &entry.TypeMod,
		)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetPrimaryKeys(table pgtype.OID) ([]KeyConstraintEntry, error) {
	return li.getKeyConstraints(table, "p")
}

func (li *LiveIntrospector) GetUniqueKeys(table pgtype.OID) ([]KeyConstraintEntry, error) {
	return li.getKeyConstraints(table, "u")
}

func (li *LiveIntrospector) getKeyConstraints(table pgtype.OID, contype string) ([]KeyConstraintEntry, error) {
	res, err := li.conn.Query(`
		SELECT oid, conname, conkey, pg_get_constraintdef(oid)
		FROM pg_constraint
		WHERE conrelid = $1
			AND contype = $2
		ORDER BY conname;
	`, table, contype)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []KeyConstraintEntry{}
	for res.Next() {
		entry := KeyConstraintEntry{}
		if err := res.Scan(&entry.Oid, &entry.Name, &entry.Columns, &entry.Definition); err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetChecks(table pgtype.OID) ([]CheckEntry, error) {
	res, err := li.conn.Query(`
		SELECT oid, conname, consrc, pg_get_constraintdef(oid)
		FROM pg_constraint
		WHERE conrelid = $1
			AND contype = 'c'
		ORDER BY conname;
	`, table)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []CheckEntry{}
	for res.Next() {
		entry := CheckEntry{}
		if err := res.Scan(&entry.Oid, &entry.Name, &maybeStr{&entry.Expression}, &entry.Definition); err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetForeignKeys(table pgtype.OID) ([]ForeignKeyEntry, error) {
	res, err := li.conn.Query(`
		SELECT oid, conname, conkey, confrelid, confkey,
			confmatchtype, confdeltype, confupdtype, pg_get_constraintdef(oid)
		FROM pg_constraint
		WHERE conrelid = $1
			AND contype = 'f'
		ORDER BY conname;
	`, table)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []ForeignKeyEntry{}
	for res.Next() {
		entry := ForeignKeyEntry{}
		err := res.Scan(
			&entry.Oid, &entry.Name, &entry.Columns, &entry.RefTableOid, &entry.RefColumns,
			&char2str{&entry.MatchType}, &char2str{&entry.OnDelete}, &char2str{&entry.OnUpdate},
			&entry.Definition,
		)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetIndexes(table pgtype.OID) ([]IndexEntry, error) {
	// indkey is an int2vector, which pgx has no mapping for
	res, err := li.conn.Query(`
		SELECT c.oid, c.relname, i.indkey::text, i.indisunique, i.indisprimary,
			a.amname, pg_get_indexdef(i.indexrelid)
		FROM pg_index i
		JOIN pg_class c ON c.oid = i.indexrelid
		JOIN pg_am a ON a.oid = c.relam
		WHERE i.indrelid = $1
		ORDER BY c.relname;
	`, table)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []IndexEntry{}
	for res.Next() {
		entry := IndexEntry{}
		var indkey string
		err := res.Scan(
			&entry.Oid, &entry.Name, &indkey, &entry.Unique, &entry.Primary,
			&entry.AccessMethod, &entry.Definition,
		)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		entry.Columns, err = parseInt2Vector(indkey)
		if err != nil {
			return nil, errors.Wrapf(err, "while parsing indkey for index %s", entry.Name)
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func parseInt2Vector(vector string) ([]int16, error) {
	out := []int16{}
	for _, field := range strings.Fields(vector) {
		n, err := strconv.ParseInt(field, 10, 16)
		if err != nil {
			return nil, err
		}
		out = append(out, int16(n))
	}
	return out, nil
}

func (li *LiveIntrospector) GetTriggers(relation pgtype.OID) ([]TriggerEntry, error) {
	res, err := li.conn.Query(`
		SELECT tgname, tgconstraint, pg_get_triggerdef(oid)
		FROM pg_trigger
		WHERE tgrelid = $1
		ORDER BY tgname;
	`, relation)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []TriggerEntry{}
	for res.Next() {
		entry := TriggerEntry{}
		if err := res.Scan(&entry.Name, &entry.ConstraintOid, &entry.Definition); err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetViews(schema pgtype.OID) ([]ViewEntry, error) {
	res, err := li.conn.Query(`
		SELECT c.oid, a.rolname, c.relname, c.relacl::text, pg_get_viewdef(c.oid)
		FROM pg_class c
		JOIN pg_authid a ON c.relowner = a.oid
		WHERE c.relnamespace = $1
			AND c.relkind = 'v'
		ORDER BY c.relname;
	`, schema)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []ViewEntry{}
	for res.Next() {
		entry := ViewEntry{}
		err := res.Scan(&entry.Oid, &entry.Owner, &entry.Name, &maybeStr{&entry.ACL}, &entry.Definition)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	return out, res.Err()
}

func (li *LiveIntrospector) GetFunctions(schema pgtype.OID) ([]FunctionEntry, error) {
	// aggregates have no pg_get_functiondef form, hence the CASE; the
	// argument type list aggregates typnames for the signature
	res, err := li.conn.Query(`
		SELECT s.oid, s.rolname, s.proname, s.argtypes, s.rettype, s.lang,
			s.proisagg, s.proiswindow, s.proacl,
			CASE WHEN s.proisagg = FALSE THEN pg_get_functiondef(s.oid) ELSE NULL END AS definition
		FROM (
			SELECT p.oid, a.rolname, p.proname, array_agg(t.typname) AS argtypes,
				rt.typname AS rettype, l.lanname AS lang,
				p.proisagg, p.proiswindow, p.proacl::text AS proacl
			FROM pg_proc p
			JOIN pg_authid a ON p.proowner = a.oid
			JOIN pg_type rt ON rt.oid = p.prorettype
			JOIN pg_language l ON l.oid = p.prolang
			LEFT OUTER JOIN pg_type t ON t.oid = ANY(p.proargtypes)
			WHERE p.pronamespace = $1
			GROUP BY p.oid, a.rolname, p.proname, p.proargtypes, rt.typname, l.lanname,
				p.proisagg, p.proiswindow, p.proacl
		) s
		ORDER BY s.proname;
	`, schema)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []FunctionEntry{}
	for res.Next() {
		entry := FunctionEntry{}
		argTypes := pgtype.TextArray{}
		err := res.Scan(
			&entry.Oid, &entry.Owner, &entry.Name, &argTypes, &entry.ReturnType, &entry.Language,
			&entry.IsAggregate, &entry.IsWindow, &maybeStr{&entry.ACL}, &maybeStr{&entry.Definition},
		)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		// a function with no arguments aggregates to {NULL}
		for _, el := range argTypes.Elements {
			if el.Status == pgtype.Present {
				entry.ArgTypes = append(entry.ArgTypes, el.String)
			}
		}
		out = append(out, entry)
	}
	return out, res.Err()
}
