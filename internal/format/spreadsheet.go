package format

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/raphi011/docbatch/internal/storage"
)

// createWorkbook writes a workbook with a single empty sheet named sheet.
func createWorkbook(path, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			return err
		}
	}

	return storage.WriteWith(path, func(w io.Writer) error {
		return f.Write(w)
	})
}
