package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bareQuoter struct{}

func (bareQuoter) QuoteSchema(name string) string  { return name }
func (bareQuoter) QuoteTable(name string) string   { return name }
func (bareQuoter) QuoteColumn(name string) string  { return name }
func (bareQuoter) QuoteRole(name string) string    { return name }
func (bareQuoter) QuoteObject(name string) string  { return name }
func (bareQuoter) QualifyTable(schema, table string) string { return schema + "." + table }
func (bareQuoter) QualifyObject(schema, obj string) string  { return schema + "." + obj }
func (bareQuoter) QualifyColumn(schema, table, column string) string {
	return schema + "." + table + "." + column
}

func TestSegmenter_PreservesEmissionOrder(t *testing.T) {
	seg := NewSegmenter(bareQuoter{})
	seg.WriteSql(NewRawSQL("DROP TABLE public.a;"))
	seg.WriteSql(NewRawSQL("CREATE TABLE public.b ();"), NewRawSQL("-- done"))

	assert.Equal(t, []string{
		"DROP TABLE public.a;",
		"CREATE TABLE public.b ();",
		"-- done",
	}, seg.AllStatements())
}

func TestSegmenter_WriteTo(t *testing.T) {
	seg := NewSegmenter(bareQuoter{})
	seg.WriteSql(NewRawSQL("DROP TABLE public.a;"), NewRawSQL(""))

	var buf strings.Builder
	assert.NoError(t, seg.WriteTo(&buf))
	assert.Equal(t, "DROP TABLE public.a;\n\n", buf.String())
}

func TestRawSQL_Formats(t *testing.T) {
	raw := NewRawSQL("DROP %s %s;", "TABLE", "public.t")
	assert.Equal(t, "DROP TABLE public.t;", raw.ToSql(bareQuoter{}))
}
