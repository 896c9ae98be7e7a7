package table

// Statement is one rendered SQL statement. Statements carry no connection
// or execution machinery; callers hand the text to whatever driver or
// client they run.
type Statement struct {
	sql string
}

// SQL returns the statement text.
func (s Statement) SQL() string { return s.sql }

func newStatement(sql string) Statement {
	return Statement{sql: sql}
}
