// Package sheets is a Google Sheets storage backend. The spreadsheet doubles
// as the admins' editing surface for ratings.
package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

type Client struct {
	srv           *sheetsv4.Service
	spreadsheetID string
}

func NewClient(serviceAccountJSONPath, spreadsheetID string) (*Client, error) {
	if _, err := os.Stat(serviceAccountJSONPath); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	ctx := context.Background()
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(serviceAccountJSONPath),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) readAll(ctx context.Context, sheet string) ([][]interface{}, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, sheet+"!A:Z").Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// replaceRows clears the sheet below the header and appends the given rows.
func (c *Client) replaceRows(ctx context.Context, sheet string, rows [][]interface{}) error {
	if _, err := c.srv.Spreadsheets.Values.Clear(c.spreadsheetID, sheet+"!A2:Z", &sheetsv4.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	vr := &sheetsv4.ValueRange{Values: rows}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, sheet+"!A:Z", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
