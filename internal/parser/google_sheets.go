package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseMenuItems reads a spreadsheet of menu rows: name, category,
// price, recipe, image. The first row is a header. Rows without a name
// or with an unparseable price are skipped.
func (p *GoogleSheetsParser) ParseMenuItems(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error) {
	readRange := "A:E"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	var items []domain.MenuItem

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) < 3 {
			continue
		}

		name := strings.TrimSpace(fmt.Sprintf("%v", row[0]))
		if name == "" {
			continue
		}

		priceStr := strings.TrimSpace(fmt.Sprintf("%v", row[2]))
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			continue
		}

		item := domain.MenuItem{
			Name:     name,
			Category: strings.TrimSpace(fmt.Sprintf("%v", row[1])),
			Price:    price,
		}

		if len(row) > 3 {
			item.Recipe = fmt.Sprintf("%v", row[3])
		}
		if len(row) > 4 {
			item.Image = fmt.Sprintf("%v", row[4])
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no menu items found in spreadsheet")
	}

	return items, nil
}
