package repository

// rowScanner abstracts over *sql.Row and *sql.Rows so the scan helpers can
// serve both single-row and multi-row paths.
type rowScanner interface {
	Scan(dest ...any) error
}
