package extract

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	pkgerrors "github.com/angelmondragon/salesbridge/pkg/errors"
	"github.com/angelmondragon/salesbridge/pkg/logger"
)

// RawSale mirrors one row of the online sales export. Values stay untyped
// strings here; coercion to the canonical schema happens in transform.
type RawSale struct {
	ProductSKU   string
	QuantitySold string
	SaleDate     string
	UnitPriceUSD string
}

var csvColumns = []string{"product_sku", "quantity_sold", "sale_date", "unit_price_usd"}

// FileExtractor reads the delimited online sales export.
type FileExtractor struct {
	log *logger.Logger
}

// NewFileExtractor builds the CSV-side extractor.
func NewFileExtractor(logg *logger.Logger) *FileExtractor {
	return &FileExtractor{log: logg}
}

// Extract reads the file at path into raw sale rows. A missing file is a
// reported condition, not a fatal one: the run continues without this source.
func (e *FileExtractor) Extract(ctx context.Context, path string) Result[RawSale] {
	ctx = e.log.WithSource(ctx, "online_csv")
	ctx = e.log.WithField(ctx, "path", path)
	e.log.Info(ctx, "reading sales export")

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			failure := pkgerrors.Wrap(pkgerrors.CodeSourceMissing, err, fmt.Sprintf("sales export not found at %s", path))
			e.log.Warn(e.log.WithField(ctx, "code", failure.Code()), "sales export missing, continuing without it")
			return Fail[RawSale](failure)
		}
		failure := pkgerrors.Wrap(pkgerrors.CodeSourceMissing, err, fmt.Sprintf("opening sales export %s", path))
		e.log.Error(ctx, "failed to open sales export", err)
		return Fail[RawSale](failure)
	}
	defer f.Close()

	rows, err := readSales(f)
	if err != nil {
		failure := pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("parsing sales export %s", path))
		e.log.Error(ctx, "failed to parse sales export", err)
		return Fail[RawSale](failure)
	}

	e.log.Info(e.log.WithField(ctx, "rows", len(rows)), "sales export extracted")
	return Ok(rows)
}

func readSales(r io.Reader) ([]RawSale, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("export has no header row")
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range csvColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("export is missing column %q", name)
		}
	}

	var rows []RawSale
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		cell := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}
		rows = append(rows, RawSale{
			ProductSKU:   cell("product_sku"),
			QuantitySold: cell("quantity_sold"),
			SaleDate:     cell("sale_date"),
			UnitPriceUSD: cell("unit_price_usd"),
		})
	}
	return rows, nil
}
