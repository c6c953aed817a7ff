package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pash62/foot4ever2/internal/storage"
)

const (
	SheetMatch   = "Match"
	SheetRatings = "Ratings"
)

// Ratings sheet rows: key | kind (id/name) | goal | defense | attack | stamina.
// Match sheet row 2: date | center_index | players ("," separated).

var _ storage.Store = (*Client)(nil)

func (c *Client) LoadMatch(ctx context.Context) (*storage.MatchRecord, error) {
	values, err := c.readAll(ctx, SheetMatch)
	if err != nil {
		return nil, err
	}
	// header row at index 0
	if len(values) < 2 || len(values[1]) < 2 {
		return nil, nil
	}
	row := values[1]
	idx, err := strconv.Atoi(get(row, 1))
	if err != nil {
		return nil, fmt.Errorf("match center_index: %w", err)
	}
	rec := &storage.MatchRecord{
		Date:       get(row, 0),
		VenueIndex: idx,
	}
	if joined := get(row, 2); joined != "" {
		rec.Players = strings.Split(joined, ",")
	}
	return rec, nil
}

func (c *Client) SaveMatch(ctx context.Context, rec storage.MatchRecord) error {
	row := []interface{}{rec.Date, strconv.Itoa(rec.VenueIndex), strings.Join(rec.Players, ",")}
	return c.replaceRows(ctx, SheetMatch, [][]interface{}{row})
}

func (c *Client) LoadRatings(ctx context.Context) (*storage.RatingsRecord, error) {
	values, err := c.readAll(ctx, SheetRatings)
	if err != nil {
		return nil, err
	}
	rec := &storage.RatingsRecord{
		ByID:   map[string][4]float64{},
		ByName: map[string][4]float64{},
	}
	for i := 1; i < len(values); i++ {
		row := values[i]
		if len(row) < 6 {
			continue
		}
		var rates [4]float64
		bad := false
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(get(row, 2+j), 64)
			if err != nil {
				bad = true
				break
			}
			rates[j] = v
		}
		if bad {
			continue
		}
		key := get(row, 0)
		switch get(row, 1) {
		case "id":
			rec.ByID[key] = rates
		case "name":
			rec.ByName[strings.ToLower(key)] = rates
		}
	}
	return rec, nil
}

func (c *Client) SaveRatings(ctx context.Context, rec storage.RatingsRecord) error {
	rows := [][]interface{}{}
	for key, rates := range rec.ByID {
		rows = append(rows, ratingsRow(key, "id", rates))
	}
	for key, rates := range rec.ByName {
		rows = append(rows, ratingsRow(key, "name", rates))
	}
	return c.replaceRows(ctx, SheetRatings, rows)
}

func ratingsRow(key, kind string, rates [4]float64) []interface{} {
	return []interface{}{
		key, kind,
		strconv.FormatFloat(rates[0], 'f', -1, 64),
		strconv.FormatFloat(rates[1], 'f', -1, 64),
		strconv.FormatFloat(rates[2], 'f', -1, 64),
		strconv.FormatFloat(rates[3], 'f', -1, 64),
	}
}

func get(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}
