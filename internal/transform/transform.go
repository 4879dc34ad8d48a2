// Package transform reconciles the two raw source shapes into the canonical
// sale record set. Every function is pure: inputs are never mutated and the
// clock is passed in by the caller.
package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/angelmondragon/salesbridge/internal/extract"
	"github.com/angelmondragon/salesbridge/pkg/db/models"
	"github.com/angelmondragon/salesbridge/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesbridge/pkg/errors"
)

const (
	// PlaceholderName fills product_name for CSV rows, which carry no title.
	PlaceholderName = "N/A"

	dateLayout = "2006-01-02"
)

// NormalizeSales maps raw CSV rows onto the canonical schema: columns are
// renamed, quantity and unit price are coerced, the sale date is parsed, and
// the missing product name gets the placeholder. Row order is preserved.
func NormalizeSales(sales []extract.RawSale) ([]models.SaleRecord, error) {
	records := make([]models.SaleRecord, 0, len(sales))
	for i, sale := range sales {
		quantity, err := strconv.Atoi(strings.TrimSpace(sale.QuantitySold))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("row %d: coercing quantity_sold %q", i+1, sale.QuantitySold))
		}
		price, err := decimal.NewFromString(strings.TrimSpace(sale.UnitPriceUSD))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("row %d: coercing unit_price_usd %q", i+1, sale.UnitPriceUSD))
		}
		timestamp, err := time.Parse(dateLayout, strings.TrimSpace(sale.SaleDate))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeBadRecord, err, fmt.Sprintf("row %d: parsing sale_date %q", i+1, sale.SaleDate))
		}
		records = append(records, models.SaleRecord{
			Source:        enums.SaleSourceOnlineCSV,
			ProductID:     sale.ProductSKU,
			ProductName:   PlaceholderName,
			Quantity:      quantity,
			PriceUSD:      price,
			SaleTimestamp: timestamp,
		})
	}
	return records, nil
}

// NormalizeProducts maps raw API products onto the canonical schema. Each
// product counts as a synthetic one-unit sale stamped with today's date.
func NormalizeProducts(products []extract.RawProduct, now time.Time) []models.SaleRecord {
	saleDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	records := make([]models.SaleRecord, 0, len(products))
	for _, product := range products {
		records = append(records, models.SaleRecord{
			Source:        enums.SaleSourceInStoreAPI,
			ProductID:     string(product.ID),
			ProductName:   product.Title,
			Quantity:      1,
			PriceUSD:      product.Price,
			SaleTimestamp: saleDay,
		})
	}
	return records
}

// Merge reconciles both extracted sets into one canonical table. If either
// input is absent the merge is skipped entirely; there is no partial mode.
// CSV rows precede API rows and each source keeps its original order.
// total_sale_value is recomputed for every row after the merge, overriding
// anything the sources supplied.
func Merge(salesRes extract.Result[extract.RawSale], productsRes extract.Result[extract.RawProduct], now time.Time) extract.Result[models.SaleRecord] {
	if salesRes.Absent() || productsRes.Absent() {
		return extract.Fail[models.SaleRecord](multierr.Combine(salesRes.Err(), productsRes.Err()))
	}

	saleRows, err := NormalizeSales(salesRes.Rows())
	if err != nil {
		return extract.Fail[models.SaleRecord](err)
	}
	productRows := NormalizeProducts(productsRes.Rows(), now)

	merged := make([]models.SaleRecord, 0, len(saleRows)+len(productRows))
	merged = append(merged, saleRows...)
	merged = append(merged, productRows...)

	for i := range merged {
		merged[i].TotalSaleValue = merged[i].PriceUSD.Mul(decimal.NewFromInt(int64(merged[i].Quantity)))
	}

	return extract.Ok(merged)
}
