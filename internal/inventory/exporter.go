package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jask/revenda/internal/database/repository"
)

// Format identifies an export artifact type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Artifact describes a written export file.
type Artifact struct {
	Path        string
	Format      Format
	ContentType string
	SizeBytes   int64
	Rows        int
	Pages       int
	CreatedAt   time.Time
}

// Exporter writes export artifacts into Dir, standing in for a browser
// download. Dir defaults to the working directory.
type Exporter struct {
	Dir    string
	Now    func() time.Time
	Logger *slog.Logger
}

// Export renders vehicles in the given format and writes the file.
func (e *Exporter) Export(ctx context.Context, format Format, vehicles []repository.Vehicle) (Artifact, error) {
	switch format {
	case FormatCSV:
		return e.ExportCSV(ctx, vehicles)
	case FormatPDF:
		return e.ExportPDF(ctx, vehicles)
	default:
		return Artifact{}, fmt.Errorf("export: unknown format %q", format)
	}
}

// ExportCSV writes estoque_veiculos.csv.
func (e *Exporter) ExportCSV(ctx context.Context, vehicles []repository.Vehicle) (Artifact, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, vehicles); err != nil {
		return Artifact{}, fmt.Errorf("export csv: %w", err)
	}
	art := Artifact{Format: FormatCSV, ContentType: CSVContentType, Rows: len(vehicles)}
	return e.write(ctx, CSVFileName, &buf, art)
}

// ExportPDF writes relatorio_estoque.pdf.
func (e *Exporter) ExportPDF(ctx context.Context, vehicles []repository.Vehicle) (Artifact, error) {
	var buf bytes.Buffer
	pages, err := WritePDF(&buf, vehicles, e.now())
	if err != nil {
		return Artifact{}, fmt.Errorf("export pdf: %w", err)
	}
	art := Artifact{Format: FormatPDF, ContentType: PDFContentType, Rows: len(vehicles), Pages: pages}
	return e.write(ctx, PDFFileName, &buf, art)
}

func (e *Exporter) write(ctx context.Context, name string, payload io.Reader, art Artifact) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return Artifact{}, fmt.Errorf("create %s: %w", name, err)
	}
	n, err := io.Copy(tmp, payload)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return Artifact{}, fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return Artifact{}, fmt.Errorf("write %s: %w", name, err)
	}

	art.Path = path
	art.SizeBytes = n
	art.CreatedAt = e.now()
	e.logger().InfoContext(ctx, "inventory exported",
		"format", string(art.Format), "path", path, "rows", art.Rows, "bytes", n)
	return art, nil
}

func (e *Exporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}
