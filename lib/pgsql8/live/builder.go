package live

import (
	"fmt"

	"github.com/jackc/pgtype"
	"github.com/pkg/errors"

	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/util"
)

// Builder materializes an immutable snapshot from the catalogs. It is the
// only writer of the snapshot model: everything downstream reads only.
type Builder struct {
	intro  Introspector
	logger util.Logger
}

func NewBuilder(intro Introspector, logger util.Logger) *Builder {
	return &Builder{intro: intro, logger: logger}
}

// tableBuild carries load-time state the snapshot itself does not keep:
// the table oid and the attribute-number lookup used to resolve
// constraint and index column lists.
type tableBuild struct {
	table       *ir.Table
	oid         pgtype.OID
	columnNames map[int16]string
}

func (tb *tableBuild) resolveColumns(nums []int16) ([]string, error) {
	out := make([]string, 0, len(nums))
	for _, num := range nums {
		// attribute number 0 marks an expression element in an index key
		if num == 0 {
			continue
		}
		name, ok := tb.columnNames[num]
		if !ok {
			return nil, errors.Errorf("table %s has no column number %d", tb.table.Name, num)
		}
		out = append(out, name)
	}
	return out, nil
}

func (b *Builder) Build() (*ir.Snapshot, error) {
	schemaEntries, err := b.intro.GetSchemas()
	if err != nil {
		return nil, errors.Wrap(err, "loading schemas")
	}

	snap := &ir.Snapshot{}
	for _, entry := range schemaEntries {
		schema, err := b.buildSchema(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "loading schema %s", entry.Name)
		}
		snap.Schemas = append(snap.Schemas, schema)
	}
	return snap, nil
}

func (b *Builder) buildSchema(entry SchemaEntry) (*ir.Schema, error) {
	schema := &ir.Schema{Name: entry.Name}
	b.logger.Trace("loading schema %s", entry.Name)

	tableEntries, err := b.intro.GetTables(entry.Oid)
	if err != nil {
		return nil, err
	}
	builds := make([]*tableBuild, 0, len(tableEntries))
	byOid := map[pgtype.OID]*tableBuild{}
	for _, te := range tableEntries {
		tb, err := b.buildTable(schema.Name, te)
		if err != nil {
			return nil, errors.Wrapf(err, "table %s", te.Name)
		}
		builds = append(builds, tb)
		byOid[tb.oid] = tb
		schema.Tables = append(schema.Tables, tb.table)
	}

	// foreign keys resolve against other tables in the schema, so they
	// load in a second pass once every table exists
	for _, tb := range builds {
		if err := b.buildForeignKeys(tb, byOid); err != nil {
			return nil, errors.Wrapf(err, "table %s", tb.table.Name)
		}
	}

	viewEntries, err := b.intro.GetViews(entry.Oid)
	if err != nil {
		return nil, err
	}
	for _, ve := range viewEntries {
		view, err := b.buildView(ve)
		if err != nil {
			return nil, errors.Wrapf(err, "view %s", ve.Name)
		}
		schema.Views = append(schema.Views, view)
	}

	functionEntries, err := b.intro.GetFunctions(entry.Oid)
	if err != nil {
		return nil, err
	}
	for _, fe := range functionEntries {
		function, err := buildFunction(fe)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", fe.Name)
		}
		schema.Functions = append(schema.Functions, function)
	}

	return schema, nil
}

func (b *Builder) buildTable(schemaName string, entry TableEntry) (*tableBuild, error) {
	grants, err := ir.GrantsFromACL(entry.ACL)
	if err != nil {
		return nil, err
	}
	tb := &tableBuild{
		table:       &ir.Table{Name: entry.Name, Owner: entry.Owner, Grants: grants},
		oid:         entry.Oid,
		columnNames: map[int16]string{},
	}

	columnEntries, err := b.intro.GetColumns(entry.Oid, fmt.Sprintf("%s.%s", schemaName, entry.Name))
	if err != nil {
		return nil, err
	}
	for _, ce := range columnEntries {
		tb.table.Columns = append(tb.table.Columns, &ir.Column{
			Position:     int(ce.Position),
			Name:         ce.Name,
			Type:         ce.Type,
			NotNull:      ce.NotNull,
			Default:      ce.Default,
			SequenceName: ce.SequenceName,
			NDims:        int(ce.NDims),
			TypeMod:      int(ce.TypeMod),
		})
		tb.columnNames[ce.Position] = ce.Name
	}

	pkEntries, err := b.intro.GetPrimaryKeys(entry.Oid)
	if err != nil {
		return nil, err
	}
	for _, pe := range pkEntries {
		if tb.table.PrimaryKey != nil {
			b.logger.Warning("More than one primary key on %s?", entry.Name)
			continue
		}
		columns, err := tb.resolveColumns(pe.Columns)
		if err != nil {
			return nil, err
		}
		tb.table.PrimaryKey = &ir.PrimaryKey{Name: pe.Name, Columns: columns, Definition: pe.Definition}
	}

	ukEntries, err := b.intro.GetUniqueKeys(entry.Oid)
	if err != nil {
		return nil, err
	}
	for _, ue := range ukEntries {
		columns, err := tb.resolveColumns(ue.Columns)
		if err != nil {
			return nil, err
		}
		tb.table.UniqueKeys = append(tb.table.UniqueKeys, &ir.UniqueKey{Name: ue.Name, Columns: columns, Definition: ue.Definition})
	}

	checkEntries, err := b.intro.GetChecks(entry.Oid)
	if err != nil {
		return nil, err
	}
	for _, ce := range checkEntries {
		tb.table.Checks = append(tb.table.Checks, &ir.Check{Name: ce.Name, Expression: ce.Expression, Definition: ce.Definition})
	}

	indexEntries, err := b.intro.GetIndexes(entry.Oid)
	if err != nil {
		return nil, err
	}
	for _, ie := range indexEntries {
		columns, err := tb.resolveColumns(ie.Columns)
		if err != nil {
			return nil, err
		}
		tb.table.Indexes = append(tb.table.Indexes, &ir.Index{
			Name:         ie.Name,
			Columns:      columns,
			Unique:       ie.Unique,
			Primary:      ie.Primary,
			AccessMethod: ie.AccessMethod,
			Definition:   ie.Definition,
		})
	}

	tb.table.Triggers, err = b.buildTriggers(entry.Oid)
	if err != nil {
		return nil, err
	}

	return tb, nil
}

func (b *Builder) buildForeignKeys(tb *tableBuild, byOid map[pgtype.OID]*tableBuild) error {
	fkEntries, err := b.intro.GetForeignKeys(tb.oid)
	if err != nil {
		return err
	}
	for _, fe := range fkEntries {
		ref, ok := byOid[fe.RefTableOid]
		if !ok {
			return errors.Errorf("foreign key %s references a table outside the schema", fe.Name)
		}
		columns, err := tb.resolveColumns(fe.Columns)
		if err != nil {
			return err
		}
		refColumns, err := ref.resolveColumns(fe.RefColumns)
		if err != nil {
			return err
		}
		matchType, err := ir.FKMatchType(fe.MatchType)
		if err != nil {
			return errors.Wrapf(err, "foreign key %s", fe.Name)
		}
		onDelete, err := ir.FKAction(fe.OnDelete)
		if err != nil {
			return errors.Wrapf(err, "foreign key %s", fe.Name)
		}
		onUpdate, err := ir.FKAction(fe.OnUpdate)
		if err != nil {
			return errors.Wrapf(err, "foreign key %s", fe.Name)
		}
		tb.table.ForeignKeys = append(tb.table.ForeignKeys, &ir.ForeignKey{
			Name:       fe.Name,
			Columns:    columns,
			RefTable:   ref.table.Name,
			RefColumns: refColumns,
			MatchType:  matchType,
			OnDelete:   onDelete,
			OnUpdate:   onUpdate,
			Definition: fe.Definition,
		})
	}
	return nil
}

func (b *Builder) buildTriggers(relation pgtype.OID) ([]*ir.Trigger, error) {
	triggerEntries, err := b.intro.GetTriggers(relation)
	if err != nil {
		return nil, err
	}
	out := []*ir.Trigger{}
	for _, te := range triggerEntries {
		out = append(out, &ir.Trigger{
			Name:       te.Name,
			Constraint: te.ConstraintOid != 0,
			Definition: te.Definition,
		})
	}
	return out, nil
}

func (b *Builder) buildView(entry ViewEntry) (*ir.View, error) {
	grants, err := ir.GrantsFromACL(entry.ACL)
	if err != nil {
		return nil, err
	}
	triggers, err := b.buildTriggers(entry.Oid)
	if err != nil {
		return nil, err
	}
	return &ir.View{
		Name:       entry.Name,
		Owner:      entry.Owner,
		Grants:     grants,
		Definition: entry.Definition,
		Triggers:   triggers,
	}, nil
}

func buildFunction(entry FunctionEntry) (*ir.Function, error) {
	grants, err := ir.GrantsFromACL(entry.ACL)
	if err != nil {
		return nil, err
	}
	return &ir.Function{
		Name:        entry.Name,
		Owner:       entry.Owner,
		ArgTypes:    entry.ArgTypes,
		ReturnType:  entry.ReturnType,
		Language:    entry.Language,
		IsAggregate: entry.IsAggregate,
		IsWindow:    entry.IsWindow,
		Grants:      grants,
		Definition:  entry.Definition,
	}, nil
}
