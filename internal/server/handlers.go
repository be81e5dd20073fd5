package server

import (
	"io"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/knakagawa/capscan-go/pkg/capscan"
	"github.com/knakagawa/capscan-go/pkg/capscan/models"
)

// handleUpload accepts a multipart workbook upload, dedupes it by
// content fingerprint, and stores the extraction result.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unreadable upload")
		return
	}
	if len(content) == 0 {
		writeError(w, http.StatusBadRequest, "Empty file")
		return
	}

	filename := header.Filename
	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".xls") && !strings.HasSuffix(lower, ".xlsx") {
		writeError(w, http.StatusBadRequest, "Only Excel files allowed")
		return
	}

	hash := capscan.Fingerprint(content)
	if wb, ok := s.store.Get(hash); ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"file_id": hash,
			"message": "File already processed",
			"tables":  wb.TableNames(),
		})
		return
	}

	wb, err := capscan.ExtractData(content, filename, capscan.DefaultOptions())
	if err != nil {
		log.Printf("[upload] processing %q failed: %v", filename, err)
		writeError(w, http.StatusBadRequest, "Error processing file: "+err.Error())
		return
	}
	s.store.Put(hash, wb)
	log.Printf("[upload] processed %q: %d sheets, %d tables", filename, len(wb.Sheets), len(wb.Tables))

	writeJSON(w, http.StatusOK, map[string]any{
		"file_id":  hash,
		"filename": wb.Filename,
		"sheets":   wb.Sheets,
		"tables":   wb.TableNames(),
		"message":  "File processed successfully",
	})
}

// handleListTables lists every extracted table of a processed file.
func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.lookupFile(w, r)
	if !ok {
		return
	}

	summaries := make([]map[string]any, 0, len(wb.Tables))
	for _, name := range wb.TableNames() {
		table := wb.Tables[name]
		summaries = append(summaries, map[string]any{
			"name":      table.Name,
			"sheet":     table.Sheet,
			"location":  table.Location(),
			"row_count": len(table.Rows),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"tables": summaries})
}

// handleTableDetails returns row names and location for one table.
func (s *Server) handleTableDetails(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.lookupFile(w, r)
	if !ok {
		return
	}
	table, ok := s.lookupTable(w, r, wb)
	if !ok {
		return
	}

	rowNames := make([]string, 0, len(table.Rows))
	for name := range table.Rows {
		rowNames = append(rowNames, name)
	}
	sort.Strings(rowNames)

	writeJSON(w, http.StatusOK, map[string]any{
		"table_name": table.Name,
		"sheet":      table.Sheet,
		"row_names":  rowNames,
		"location":   table.Location(),
	})
}

// handleRowValue returns a single row's value: the lone value for
// one-element rows, otherwise the sum of its non-nil values.
func (s *Server) handleRowValue(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.lookupFile(w, r)
	if !ok {
		return
	}
	table, ok := s.lookupTable(w, r, wb)
	if !ok {
		return
	}

	rowName := r.URL.Query().Get("row_name")
	row, ok := table.Rows[rowName]
	if !ok {
		writeError(w, http.StatusNotFound, "Row not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"table_name": table.Name,
		"row_name":   row.Name,
		"value":      rowValue(row),
		"sheet":      table.Sheet,
		"location":   row.Location,
	})
}

func rowValue(row models.Row) *float64 {
	switch len(row.Values) {
	case 0:
		return nil
	case 1:
		return row.Values[0]
	}
	total := 0.0
	for _, v := range row.Values {
		if v != nil {
			total += *v
		}
	}
	return &total
}

func (s *Server) lookupFile(w http.ResponseWriter, r *http.Request) (*models.Workbook, bool) {
	fileID := r.URL.Query().Get("file_id")
	wb, ok := s.store.Get(fileID)
	if !ok {
		writeError(w, http.StatusNotFound, "File not found")
		return nil, false
	}
	return wb, true
}

func (s *Server) lookupTable(w http.ResponseWriter, r *http.Request, wb *models.Workbook) (models.Table, bool) {
	tableName := r.URL.Query().Get("table_name")
	table, ok := wb.Tables[tableName]
	if !ok {
		writeError(w, http.StatusNotFound, "Table not found")
		return models.Table{}, false
	}
	return table, true
}
