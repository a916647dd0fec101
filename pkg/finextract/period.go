package finextract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/finextract-go/pkg/finextract/models"
)

var fiscalPeriodPattern = regexp.MustCompile(`(?i)^(\d{4})-([a-z]\d)\.[a-z0-9]+$`)

// ParseFiscalPeriod reads the fiscal year and quarter from a file name of the
// form <year>-<quarter>.<ext>, for example "2024-q3.xlsx". The quarter token is
// matched case-insensitively and returned upper-cased.
func ParseFiscalPeriod(path string) (models.FiscalPeriod, error) {
	name := filepath.Base(path)
	m := fiscalPeriodPattern.FindStringSubmatch(name)
	if m == nil {
		return models.FiscalPeriod{}, NewFormatError(path, KindFilename,
			fmt.Errorf("file name %q does not match <year>-<quarter>.<ext>", name))
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return models.FiscalPeriod{}, NewFormatError(path, KindFilename, err)
	}
	return models.FiscalPeriod{
		Year:    year,
		Quarter: strings.ToUpper(m[2]),
	}, nil
}
