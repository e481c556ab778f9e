package output

import (
	"encoding/json"

	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/models"
)

// ToJSON serializes a workbook summary.
func ToJSON(wb *models.WorkbookSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(wb, "", "  ")
	}
	return json.Marshal(wb)
}
