package checklist

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Validate checks that the file is an XLSX workbook with at least one worksheet.
func Validate(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("invalid checklist workbook %s (%w)", path, err)
	}

	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) == 0 {
		return fmt.Errorf("checklist workbook %s has no worksheets", path)
	}

	return nil
}
