// Package parser reads spreadsheet files into plain string grids.
package parser

import (
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads every row of a sheet as display text.
// Missing cells come back as empty strings; rows keep their position.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return models.NewGrid(rows), nil
}
