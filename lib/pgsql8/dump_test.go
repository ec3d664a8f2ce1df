package pgsql8

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgdelta/pgdelta/lib/ir"
)

func TestDumpSnapshot_ForeignKeysComeAfterAllTables(t *testing.T) {
	snap := &ir.Snapshot{
		Schemas: []*ir.Schema{
			{
				Name: "public",
				Tables: []*ir.Table{
					{
						Name:  "orders",
						Owner: "admin",
						Columns: []*ir.Column{
							{Position: 1, Name: "id", Type: "int4", NotNull: true, TypeMod: -1},
							{Position: 2, Name: "user_id", Type: "int4", TypeMod: -1},
						},
						ForeignKeys: []*ir.ForeignKey{
							{
								Name:       "orders_user_id_fkey",
								Columns:    []string{"user_id"},
								RefTable:   "public.users",
								RefColumns: []string{"id"},
								Definition: "FOREIGN KEY (user_id) REFERENCES public.users(id)",
							},
						},
					},
					{
						Name:  "users",
						Owner: "admin",
						Columns: []*ir.Column{
							{Position: 1, Name: "id", Type: "int4", NotNull: true, TypeMod: -1},
						},
					},
				},
			},
		},
	}

	ddl := statementsOnly(renderAll(t, DumpSnapshot(snap)))
	assert.Equal(t, []string{
		"CREATE TABLE public.orders (\n  id int4 NOT NULL\n, user_id int4 NULL\n);",
		"ALTER TABLE public.orders OWNER TO admin;",
		"CREATE TABLE public.users (\n  id int4 NOT NULL\n);",
		"ALTER TABLE public.users OWNER TO admin;",
		"ALTER TABLE public.orders ADD CONSTRAINT orders_user_id_fkey FOREIGN KEY (user_id) REFERENCES public.users(id);",
	}, ddl)
}

func TestDumpSnapshot_TableWithConstraintsAndExtras(t *testing.T) {
	snap := &ir.Snapshot{
		Schemas: []*ir.Schema{
			{
				Name: "public",
				Tables: []*ir.Table{
					{
						Name:  "users",
						Owner: "admin",
						Columns: []*ir.Column{
							{Position: 1, Name: "id", Type: "int4", NotNull: true, SequenceName: "public.users_id_seq", Default: "nextval('users_id_seq'::regclass)", TypeMod: -1},
							{Position: 2, Name: "email", Type: "varchar", NotNull: true, TypeMod: 259},
						},
						PrimaryKey: &ir.PrimaryKey{Name: "users_pkey", Columns: []string{"id"}, Definition: "PRIMARY KEY (id)"},
						UniqueKeys: []*ir.UniqueKey{
							{Name: "users_email_key", Columns: []string{"email"}, Definition: "UNIQUE (email)"},
						},
						Checks: []*ir.Check{
							{Name: "users_email_check", Expression: "email <> ''", Definition: "CHECK (email <> '')"},
						},
						Indexes: []*ir.Index{
							{Name: "users_pkey", Unique: true, Primary: true, Definition: "CREATE UNIQUE INDEX users_pkey ON public.users USING btree (id)"},
							{Name: "users_email_key", Unique: true, Definition: "CREATE UNIQUE INDEX users_email_key ON public.users USING btree (email)"},
							{Name: "users_email_lower_idx", Definition: "CREATE INDEX users_email_lower_idx ON public.users USING btree (lower(email))"},
						},
						Grants: []*ir.Grant{{Role: "app", Privileges: "arwd"}},
					},
				},
			},
		},
	}

	ddl := statementsOnly(renderAll(t, DumpSnapshot(snap)))
	assert.Equal(t, []string{
		"CREATE TABLE public.users (\n" +
			"  id serial NOT NULL -- DEFAULT nextval('users_id_seq'::regclass)\n" +
			", email varchar(255) NOT NULL\n" +
			", CONSTRAINT users_pkey PRIMARY KEY (id)\n" +
			", CONSTRAINT users_email_key UNIQUE (email)\n" +
			", CONSTRAINT users_email_check CHECK (email <> '')\n" +
			");",
		"CREATE INDEX users_email_lower_idx ON public.users USING btree (lower(email));",
		"GRANT INSERT, SELECT, UPDATE, DELETE ON public.users TO app;",
		"ALTER TABLE public.users OWNER TO admin;",
	}, ddl)
}

func TestDumpSnapshot_AggregateFunctionHasNoCreate(t *testing.T) {
	snap := &ir.Snapshot{
		Schemas: []*ir.Schema{
			{
				Name: "public",
				Functions: []*ir.Function{
					{
						Name:        "weighted_avg",
						Owner:       "admin",
						ArgTypes:    []string{"numeric", "numeric"},
						IsAggregate: true,
					},
				},
			},
		},
	}

	ddl := statementsOnly(renderAll(t, DumpSnapshot(snap)))
	assert.Equal(t, []string{
		"ALTER FUNCTION public.weighted_avg(numeric, numeric) OWNER TO admin;",
	}, ddl)
}

func TestDumpSnapshot_ViewWithTriggerAndGrants(t *testing.T) {
	snap := &ir.Snapshot{
		Schemas: []*ir.Schema{
			{
				Name: "public",
				Views: []*ir.View{
					{
						Name:       "active_users",
						Owner:      "admin",
						Definition: " SELECT users.id\n   FROM users\n  WHERE users.active;",
						Grants:     []*ir.Grant{{Role: "reporting", Privileges: "r"}},
						Triggers: []*ir.Trigger{
							{Name: "active_users_ins", Definition: "CREATE TRIGGER active_users_ins INSTEAD OF INSERT ON public.active_users FOR EACH ROW EXECUTE FUNCTION noop()"},
						},
					},
				},
			},
		},
	}

	ddl := statementsOnly(renderAll(t, DumpSnapshot(snap)))
	assert.Equal(t, []string{
		"CREATE VIEW public.active_users AS\n SELECT users.id\n   FROM users\n  WHERE users.active;",
		"CREATE TRIGGER active_users_ins INSTEAD OF INSERT ON public.active_users FOR EACH ROW EXECUTE FUNCTION noop();",
		"GRANT SELECT ON public.active_users TO reporting;",
		"ALTER VIEW public.active_users OWNER TO admin;",
	}, ddl)
}
