package table

import (
	"sort"
	"strings"

	"github.com/tablekit/tablekit/pkg/resolver"
)

// AthenaTable adds the Athena-specific operations: external-table DDL,
// partition management, and the configuration-backed MSCK REPAIR.
type AthenaTable struct {
	*Table
	external ExternalOptions
}

func newAthenaTable(base *Table) (*AthenaTable, error) {
	t := &AthenaTable{Table: base}
	if err := decodeParams(base.Options(), &t.external); err != nil {
		return nil, err
	}
	return t, nil
}

// Create renders CREATE EXTERNAL TABLE with the configured storage
// format, partitioning, and location clauses.
func (t *AthenaTable) Create() (Statement, error) {
	return t.createExternal(false)
}

// CreateIfNotExists renders CREATE EXTERNAL TABLE IF NOT EXISTS.
func (t *AthenaTable) CreateIfNotExists() (Statement, error) {
	return t.createExternal(true)
}

func (t *AthenaTable) createExternal(ifNotExists bool) (Statement, error) {
	if len(t.columns) == 0 {
		return Statement{}, &NoColumnsError{Table: t.name, Statement: "CREATE TABLE"}
	}

	partitioned := make(map[string]bool, len(t.external.PartitionBy))
	for _, p := range t.external.PartitionBy {
		partitioned[p] = true
	}

	var clauses, partitions []string
	for i := range t.columns {
		c := &t.columns[i]
		clause := t.def.QuoteIdentifier(c.Name) + " " + t.def.RenderType(c.Type)
		if partitioned[c.Name] {
			partitions = append(partitions, clause)
		} else {
			clauses = append(clauses, clause)
		}
	}
	if len(clauses) == 0 {
		return Statement{}, &NoColumnsError{Table: t.name, Statement: "CREATE TABLE"}
	}

	var b strings.Builder
	b.WriteString("CREATE EXTERNAL TABLE ")
	if ifNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(t.QualifiedName())
	b.WriteString(" (\n    ")
	b.WriteString(strings.Join(clauses, ",\n    "))
	b.WriteString("\n)")
	if len(partitions) > 0 {
		b.WriteString("\nPARTITIONED BY (" + strings.Join(partitions, ", ") + ")")
	}
	if t.external.StoredAs != "" {
		b.WriteString("\nSTORED AS " + strings.ToUpper(t.external.StoredAs))
	}
	if t.external.Location != "" {
		b.WriteString("\nLOCATION '" + t.external.Location + "'")
	}
	return newStatement(b.String()), nil
}

// CreateAsSelect renders a CTAS with the configured location and storage
// format as WITH properties.
func (t *AthenaTable) CreateAsSelect(query string) (Statement, error) {
	if strings.TrimSpace(query) == "" {
		return Statement{}, &NoColumnsError{Table: t.name, Statement: "CREATE TABLE AS"}
	}

	var props []string
	if t.external.Location != "" {
		props = append(props, "external_location = '"+t.external.Location+"'")
	}
	if t.external.StoredAs != "" {
		props = append(props, "format = '"+strings.ToUpper(t.external.StoredAs)+"'")
	}
	if len(t.external.PartitionBy) > 0 {
		quoted := make([]string, len(t.external.PartitionBy))
		for i, p := range t.external.PartitionBy {
			quoted[i] = "'" + p + "'"
		}
		props = append(props, "partitioned_by = ARRAY["+strings.Join(quoted, ", ")+"]")
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(t.QualifiedName())
	if len(props) > 0 {
		b.WriteString(" WITH (" + strings.Join(props, ", ") + ")")
	}
	b.WriteString(" AS ")
	b.WriteString(query)
	return newStatement(b.String()), nil
}

// Truncate is not a verb Athena has; dropping recreates nothing, so the
// closest equivalent is deleting every row.
func (t *AthenaTable) Truncate() Statement {
	return newStatement("DELETE FROM " + t.QualifiedName())
}

// AddPartition renders ALTER TABLE ... ADD PARTITION for the given
// partition key values, with an optional explicit location.
func (t *AthenaTable) AddPartition(values map[string]string, location string) Statement {
	var b strings.Builder
	b.WriteString("ALTER TABLE ")
	b.WriteString(t.QualifiedName())
	b.WriteString(" ADD IF NOT EXISTS PARTITION (")
	b.WriteString(renderPartitionSpec(values))
	b.WriteString(")")
	if location != "" {
		b.WriteString(" LOCATION '" + location + "'")
	}
	return newStatement(b.String())
}

// DropPartition renders ALTER TABLE ... DROP PARTITION.
func (t *AthenaTable) DropPartition(values map[string]string) Statement {
	return newStatement("ALTER TABLE " + t.QualifiedName() +
		" DROP IF EXISTS PARTITION (" + renderPartitionSpec(values) + ")")
}

// ShowPartitions renders SHOW PARTITIONS.
func (t *AthenaTable) ShowPartitions() Statement {
	return newStatement("SHOW PARTITIONS " + t.QualifiedName())
}

// MSCKRepair renders MSCK REPAIR TABLE. The operation is
// configuration-backed but has no mandatory parameter; stored
// configuration and request parameters are resolved for their side
// effects on validation only.
func (t *AthenaTable) MSCKRepair(req resolver.Request) (Statement, error) {
	if _, err := t.resolveMethod("msck_repair", "", req); err != nil {
		return Statement{}, err
	}
	return newStatement("MSCK REPAIR TABLE " + t.QualifiedName()), nil
}

// renderPartitionSpec renders partition key/value pairs in key order.
func renderPartitionSpec(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " = '" + values[k] + "'"
	}
	return strings.Join(parts, ", ")
}
