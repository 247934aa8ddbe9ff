package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/logging"
	"github.com/andareed/siftly-grid/window"
)

var (
	logFile   = flag.String("debug", "", "Write Debug Logs to file")
	maxRows   = flag.Int("max-rows", window.DefaultMaxVisibleRows, "Maximum simultaneously materialized rows")
	rowHeight = flag.Int("row-height", 1, "Terminal lines per row")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-grid: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sfgrid [--debug debug.log] <file.csv | ->")
		os.Exit(1)
	}

	inputPath := args[0]

	// Rows are one terminal line tall by default; the engine default of 49
	// is for pixel-measured hosts.
	geo := window.Geometry{
		RowHeight:      max(*rowHeight, 1),
		MaxVisibleRows: *maxRows,
		BufferSize:     window.DefaultBufferSize,
	}

	var (
		m      *model
		follow *csv.Reader
	)
	if inputPath == "-" {
		m, follow, err = newModelFromStdin(geo)
	} else {
		m, err = newModelFromCSVFile(inputPath, geo)
	}
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.setProgram(p)
	if follow != nil {
		go followRows(p, follow)
	}

	if _, err := p.Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

func newModelFromCSVFile(path string, geo window.Geometry) (*model, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" {
		return nil, fmt.Errorf("unsupported file extension %q (want .csv or -)", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, records, err := readCSV(f)
	if err != nil {
		return nil, err
	}

	m := newModel(header, records, filepath.Base(path), geo)
	m.InitialPath = path
	return m, nil
}

// newModelFromStdin reads the header row eagerly and hands back the same
// reader for follow mode; a fresh reader on os.Stdin would drop whatever
// the header read already buffered.
func newModelFromStdin(geo window.Geometry) (*model, *csv.Reader, error) {
	r := csv.NewReader(os.Stdin)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header from stdin: %w", err)
	}

	m := newModel(header, nil, "(stdin)", geo)
	m.data.following = true
	return m, r, nil
}

func readCSV(f io.Reader) (header []string, records [][]string, err error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err = r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv header: %w", err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading csv row: %w", err)
		}
		records = append(records, record)
	}
	return header, records, nil
}
