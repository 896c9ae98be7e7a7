package table

import (
	"strings"

	"github.com/tablekit/tablekit/pkg/resolver"
)

// RedshiftTable adds the Redshift-specific operations: the
// configuration-backed COPY/UNLOAD pair plus maintenance statements.
type RedshiftTable struct {
	*Table
	distribution DistributionOptions
}

func newRedshiftTable(base *Table) (*RedshiftTable, error) {
	t := &RedshiftTable{Table: base}
	if err := decodeParams(base.Options(), &t.distribution); err != nil {
		return nil, err
	}

	var suffix strings.Builder
	if t.distribution.DistStyle != "" {
		suffix.WriteString(" DISTSTYLE " + strings.ToUpper(t.distribution.DistStyle))
	}
	if t.distribution.DistKey != "" {
		suffix.WriteString(" DISTKEY(" + t.distribution.DistKey + ")")
	}
	if len(t.distribution.SortKeys) > 0 {
		suffix.WriteString(" SORTKEY(" + strings.Join(t.distribution.SortKeys, ", ") + ")")
	}
	base.createSuffix = suffix.String()
	return t, nil
}

// CopyFromS3 renders a COPY from the stored method configuration merged
// with the request. The S3 path is mandatory; it may come from either
// side.
func (t *RedshiftTable) CopyFromS3(req resolver.Request) (Statement, error) {
	bag, err := t.resolveMethod("copy_from_s3", "s3_path", req)
	if err != nil {
		return Statement{}, err
	}
	var opts CopyOptions
	if err := decodeParams(bag, &opts); err != nil {
		return Statement{}, err
	}

	var b strings.Builder
	b.WriteString("COPY ")
	b.WriteString(t.QualifiedName())
	b.WriteString(" FROM '")
	b.WriteString(opts.S3Path)
	b.WriteString("'")
	writeCopyAuth(&b, opts)
	if opts.Format != "" {
		b.WriteString(" FORMAT AS " + strings.ToUpper(opts.Format))
	}
	if opts.Delimiter != "" {
		b.WriteString(" DELIMITER '" + opts.Delimiter + "'")
	}
	if opts.Compression != "" {
		b.WriteString(" " + strings.ToUpper(opts.Compression))
	}
	if opts.Region != "" {
		b.WriteString(" REGION '" + opts.Region + "'")
	}
	return newStatement(b.String()), nil
}

// UnloadToS3 renders an UNLOAD of the whole table (or the query given
// in the "query" parameter) to S3. The S3 path is mandatory.
func (t *RedshiftTable) UnloadToS3(req resolver.Request) (Statement, error) {
	bag, err := t.resolveMethod("unload_to_s3", "s3_path", req)
	if err != nil {
		return Statement{}, err
	}
	var opts CopyOptions
	if err := decodeParams(bag, &opts); err != nil {
		return Statement{}, err
	}

	query := bag.StringOr("query", "SELECT * FROM "+t.QualifiedName())

	var b strings.Builder
	b.WriteString("UNLOAD ('")
	b.WriteString(strings.ReplaceAll(query, "'", "''"))
	b.WriteString("') TO '")
	b.WriteString(opts.S3Path)
	b.WriteString("'")
	writeCopyAuth(&b, opts)
	if opts.Format != "" {
		b.WriteString(" FORMAT AS " + strings.ToUpper(opts.Format))
	}
	if opts.Delimiter != "" {
		b.WriteString(" DELIMITER '" + opts.Delimiter + "'")
	}
	if opts.Compression != "" {
		b.WriteString(" " + strings.ToUpper(opts.Compression))
	}
	if opts.Parallel != nil && !*opts.Parallel {
		b.WriteString(" PARALLEL OFF")
	}
	return newStatement(b.String()), nil
}

func writeCopyAuth(b *strings.Builder, opts CopyOptions) {
	switch {
	case opts.IAMRole != "":
		b.WriteString(" IAM_ROLE '" + opts.IAMRole + "'")
	case opts.Credentials != "":
		b.WriteString(" CREDENTIALS '" + opts.Credentials + "'")
	}
}

// AnalyzeCompression renders ANALYZE COMPRESSION.
func (t *RedshiftTable) AnalyzeCompression() Statement {
	return newStatement("ANALYZE COMPRESSION " + t.QualifiedName())
}

// Vacuum renders VACUUM, optionally as VACUUM REINDEX.
func (t *RedshiftTable) Vacuum(reindex bool) Statement {
	if reindex {
		return newStatement("VACUUM REINDEX " + t.QualifiedName())
	}
	return newStatement("VACUUM " + t.QualifiedName())
}

// DeepCopy renders the statements of a deep copy: create a sibling with
// the table's structure from a full select, swap it in by rename.
func (t *RedshiftTable) DeepCopy() ([]Statement, error) {
	tmp := t.name + "_copy"
	ctas, err := t.CreateAsSelect("SELECT * FROM " + t.QualifiedName())
	if err != nil {
		return nil, err
	}
	create := newStatement(strings.Replace(
		ctas.SQL(),
		"CREATE TABLE "+t.QualifiedName(),
		"CREATE TABLE "+t.def.QualifyTable(t.Schema(), tmp),
		1,
	))
	return []Statement{
		create,
		newStatement("DROP TABLE " + t.QualifiedName()),
		newStatement("ALTER TABLE " + t.def.QualifyTable(t.Schema(), tmp) + " RENAME TO " + t.name),
	}, nil
}
