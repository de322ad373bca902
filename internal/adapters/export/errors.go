package export

import "errors"

// ErrExport wraps every failure to build or save a workbook.
var ErrExport = errors.New("export failed")
