package sales

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

const (
	colName = iota
	colCode
	colFreezerCode
	colPhone
	colVisitDays
)

const maxImportRows = 5000

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func isHeader(rec []string) bool {
	switch normalizeKey(rec[colName]) {
	case "name", "nama", "nama toko", "store":
		return true
	}
	return false
}

func column(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

type importRow struct {
	line   int
	insert *entity.StoreInsert
}

// ImportStores creates stores from CSV rows of name, code, freezer code,
// phone and a comma separated list of visit days. The header row is
// optional. Rows matching an existing store by name or code are skipped and
// reported, as are invalid rows.
func (s *Server) ImportStores(ctx context.Context, r io.Reader) (*dto.ImportStoresResponse, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, gerr.InvalidArgument("can't read csv: %v", err)
	}
	if len(records) > maxImportRows {
		return nil, gerr.InvalidArgument("too many rows: %d, max %d", len(records), maxImportRows)
	}

	existing, err := s.repo.Stores().ListStores(ctx)
	if err != nil {
		return nil, internalErr(ctx, "can't list stores", err)
	}
	names := map[string]bool{}
	codes := map[string]bool{}
	for _, st := range existing {
		names[normalizeKey(st.Name)] = true
		if st.Code.Valid {
			codes[normalizeKey(st.Code.String)] = true
		}
	}

	resp := &dto.ImportStoresResponse{Skipped: []dto.ImportSkip{}}
	skip := func(line int, name, reason string) {
		resp.Skipped = append(resp.Skipped, dto.ImportSkip{Line: line, Name: name, Reason: reason})
	}

	var rows []importRow
	for i, rec := range records {
		line := i + 1
		if i == 0 && isHeader(rec) {
			continue
		}
		name := column(rec, colName)
		if name == "" {
			if strings.TrimSpace(strings.Join(rec, "")) != "" {
				skip(line, "", "name is empty")
			}
			continue
		}
		req := &dto.StoreInsert{
			Name:        name,
			Code:        column(rec, colCode),
			FreezerCode: column(rec, colFreezerCode),
			Phone:       column(rec, colPhone),
		}
		if days := column(rec, colVisitDays); days != "" {
			req.VisitDays = strings.Split(days, ",")
		}

		si, err := s.storeInsert(ctx, req)
		if err != nil {
			skip(line, name, errorReason(err))
			continue
		}

		nk := normalizeKey(name)
		if names[nk] {
			skip(line, name, "duplicate name")
			continue
		}
		ck := ""
		if si.Code.Valid {
			ck = normalizeKey(si.Code.String)
			if codes[ck] {
				skip(line, name, fmt.Sprintf("duplicate code %q", si.Code.String))
				continue
			}
		}
		names[nk] = true
		if ck != "" {
			codes[ck] = true
		}
		rows = append(rows, importRow{line: line, insert: si})
	}

	if len(rows) == 0 {
		return resp, nil
	}

	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		for _, row := range rows {
			if _, err := rep.Stores().AddStore(ctx, row.insert); err != nil {
				if rep.IsErrUniqueViolation(err) {
					return fmt.Errorf("line %d: %w", row.line, errDuplicateStore)
				}
				return fmt.Errorf("line %d: %w", row.line, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errDuplicateStore) {
			return nil, gerr.InvalidArgument("%v", err)
		}
		return nil, internalErr(ctx, "can't import stores", err)
	}

	resp.Created = len(rows)
	slog.Default().InfoContext(ctx, "stores imported",
		slog.Int("created", resp.Created),
		slog.Int("skipped", len(resp.Skipped)),
	)
	return resp, nil
}

var errDuplicateStore = errors.New("store already exists")

// errorReason flattens a validation status into a single line.
func errorReason(err error) string {
	st := status.Convert(err)
	var parts []string
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, fv := range br.GetFieldViolations() {
				parts = append(parts, fv.GetDescription())
			}
		}
	}
	if len(parts) == 0 {
		return st.Message()
	}
	return strings.Join(parts, " ")
}
