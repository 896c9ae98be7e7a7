package table

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/tablekit/tablekit/pkg/params"
)

// decodeParams decodes a parameter bag into a typed options struct.
// Keys the struct does not name land in its ",remain" field when it has
// one, so unrecognized parameters survive decoding.
func decodeParams(bag params.Map, out any) error {
	if len(bag) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(bag))
}

// StorageOptions are the per-table options MySQL honors in CREATE TABLE.
type StorageOptions struct {
	Engine    string     `mapstructure:"engine"`
	Charset   string     `mapstructure:"charset"`
	Collation string     `mapstructure:"collation"`
	Rest      params.Map `mapstructure:",remain"`
}

// DistributionOptions are the per-table options Redshift honors in
// CREATE TABLE.
type DistributionOptions struct {
	DistStyle string     `mapstructure:"dist_style"`
	DistKey   string     `mapstructure:"dist_key"`
	SortKeys  []string   `mapstructure:"sort_keys"`
	Rest      params.Map `mapstructure:",remain"`
}

// ExternalOptions are the per-table options Athena honors in CREATE
// TABLE and CTAS.
type ExternalOptions struct {
	Location    string     `mapstructure:"location"`
	StoredAs    string     `mapstructure:"stored_as"`
	PartitionBy []string   `mapstructure:"partition_by"`
	Rest        params.Map `mapstructure:",remain"`
}

// TablespaceOptions are the per-table options Oracle honors in CREATE
// TABLE.
type TablespaceOptions struct {
	Tablespace   string     `mapstructure:"tablespace"`
	Organization string     `mapstructure:"organization"`
	Compress     bool       `mapstructure:"compress"`
	Rest         params.Map `mapstructure:",remain"`
}

// LoadDataOptions shape the resolved parameter bag of a MySQL LOAD DATA
// INFILE operation.
type LoadDataOptions struct {
	FilePath       string     `mapstructure:"file_path"`
	Local          bool       `mapstructure:"local"`
	Delimiter      string     `mapstructure:"delimiter"`
	Enclosure      string     `mapstructure:"enclosure"`
	LineTerminator string     `mapstructure:"line_terminator"`
	IgnoreLines    int        `mapstructure:"ignore_lines"`
	Rest           params.Map `mapstructure:",remain"`
}

// CopyOptions shape the resolved parameter bag of a Redshift COPY or
// UNLOAD operation.
type CopyOptions struct {
	S3Path      string     `mapstructure:"s3_path"`
	Credentials string     `mapstructure:"credentials"`
	IAMRole     string     `mapstructure:"iam_role"`
	Format      string     `mapstructure:"format"`
	Delimiter   string     `mapstructure:"delimiter"`
	Region      string     `mapstructure:"region"`
	Compression string     `mapstructure:"compression"`
	Parallel    *bool      `mapstructure:"parallel"`
	Rest        params.Map `mapstructure:",remain"`
}

// CSVOptions shape the resolved parameter bag of a PostgreSQL COPY
// to/from CSV operation.
type CSVOptions struct {
	FilePath  string     `mapstructure:"file_path"`
	Delimiter string     `mapstructure:"delimiter"`
	Header    bool       `mapstructure:"header"`
	Null      string     `mapstructure:"null"`
	Rest      params.Map `mapstructure:",remain"`
}
