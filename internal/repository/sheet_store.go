package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetValues is the slice of the spreadsheet API the store needs. Get
// returns ErrTableMissing when the named sheet does not exist.
type SheetValues interface {
	Get(ctx context.Context, sheet string) ([][]interface{}, error)
	Update(ctx context.Context, sheet string, values [][]interface{}) error
	AddSheet(ctx context.Context, sheet string) error
}

// Table is a whole sheet loaded into memory, header excluded.
type Table struct {
	Columns []string
	Rows    [][]string
	missing bool
}

func (t *Table) column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *Table) ids() ([]int64, error) {
	ids := make([]int64, 0, len(t.Rows))
	for _, row := range t.Rows {
		id, err := parseID(row[0])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SheetStore reads and rewrites whole sheets. Mutations hold a lock for the
// full read-modify-write so writers in this process never interleave.
type SheetStore struct {
	mu     sync.Mutex
	values SheetValues
}

func NewSheetStore(values SheetValues) *SheetStore {
	return &SheetStore{values: values}
}

// Read loads sheet. A missing or blank sheet reads as an empty table with
// the given columns; a header that differs from columns is an error.
func (s *SheetStore) Read(ctx context.Context, sheet string, columns []string) (*Table, error) {
	return s.read(ctx, sheet, columns)
}

// Mutate loads sheet, applies fn and writes the whole table back. Nothing is
// written when fn returns an error.
func (s *SheetStore) Mutate(ctx context.Context, sheet string, columns []string, fn func(*Table) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.read(ctx, sheet, columns)
	if err != nil {
		return err
	}
	if err := fn(t); err != nil {
		return err
	}
	return s.write(ctx, sheet, t)
}

func (s *SheetStore) read(ctx context.Context, sheet string, columns []string) (*Table, error) {
	values, err := s.values.Get(ctx, sheet)
	if errors.Is(err, ErrTableMissing) {
		slog.Info("sheet missing, reading as empty", "sheet", sheet)
		return &Table{Columns: columns, missing: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	t := &Table{Columns: columns}
	if len(values) == 0 {
		return t, nil
	}
	if err := checkHeader(values[0], columns); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}

	for _, raw := range values[1:] {
		row := make([]string, len(columns))
		blank := true
		for i := range columns {
			if i < len(raw) {
				row[i] = cellString(raw[i])
			}
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (s *SheetStore) write(ctx context.Context, sheet string, t *Table) error {
	if t.missing {
		if err := s.values.AddSheet(ctx, sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		t.missing = false
	}

	values := make([][]interface{}, 0, len(t.Rows)+1)
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	values = append(values, header)
	for _, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		values = append(values, cells)
	}

	if err := s.values.Update(ctx, sheet, values); err != nil {
		return fmt.Errorf("write sheet %s: %w", sheet, err)
	}
	return nil
}

func checkHeader(header []interface{}, columns []string) error {
	if len(header) != len(columns) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrSchemaMismatch, len(header), len(columns))
	}
	for i, c := range columns {
		if got := strings.TrimSpace(cellString(header[i])); got != c {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrSchemaMismatch, i+1, got, c)
		}
	}
	return nil
}

func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", ErrMalformedRow, s)
	}
	return id, nil
}

type googleSheetValues struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewGoogleSheetValues connects to one spreadsheet with a service account.
func NewGoogleSheetValues(ctx context.Context, credentialsPath, spreadsheetID string) (SheetValues, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &googleSheetValues{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (g *googleSheetValues) Get(ctx context.Context, sheet string) ([][]interface{}, error) {
	resp, err := g.srv.Spreadsheets.Values.Get(g.spreadsheetID, quoteSheet(sheet)).Context(ctx).Do()
	if err != nil {
		if isMissingSheet(err) {
			return nil, ErrTableMissing
		}
		return nil, err
	}
	return resp.Values, nil
}

// Update writes RAW so captions or passwords starting with "=" stay text.
func (g *googleSheetValues) Update(ctx context.Context, sheet string, values [][]interface{}) error {
	valueRange := &sheets.ValueRange{Values: values}
	_, err := g.srv.Spreadsheets.Values.Update(g.spreadsheetID, quoteSheet(sheet)+"!A1", valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (g *googleSheetValues) AddSheet(ctx context.Context, sheet string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: sheet},
				},
			},
		},
	}
	_, err := g.srv.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	return err
}

func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func isMissingSheet(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, "Unable to parse range")
}
