// Command verify runs a single verification attempt offline: declared fields
// on the command line, recognized text from a file or stdin, report as JSON
// on stdout. Exit code 1 means the document did not pass.
// Usage: go run ./cmd/verify -first Juan -last "Dela Cruz" -number A12-34-567890 -type "Driver's License (LTO)" -text ocr.txt
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Theijiii/plms-sys-sub005/internal/refdata"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		firstName  = flag.String("first", "", "declared first name")
		lastName   = flag.String("last", "", "declared last name")
		middleName = flag.String("middle", "", "declared middle name (optional)")
		idNumber   = flag.String("number", "", "declared ID number")
		idType     = flag.String("type", "", "declared document type label")
		birthdate  = flag.String("birthdate", "", "declared birthdate, YYYY-MM-DD (optional)")
		textPath   = flag.String("text", "-", "recognized text file, - for stdin")
		listTypes  = flag.Bool("list-types", false, "print the known document type labels and exit")
	)
	flag.Parse()

	months, err := refdata.LoadMonths("")
	if err != nil {
		return err
	}
	categories, err := refdata.LoadCategories("")
	if err != nil {
		return err
	}
	engine := verify.NewEngine(
		verify.NewMonthTable(months),
		verify.NewCategoryTable(categories),
		verify.EngineConfig{},
	)

	if *listTypes {
		table := verify.NewCategoryTable(categories)
		for _, label := range table.Labels() {
			fmt.Println(label)
		}
		return nil
	}

	declared := verify.DeclaredIdentity{
		FirstName:  *firstName,
		LastName:   *lastName,
		MiddleName: *middleName,
		IDNumber:   *idNumber,
		IDType:     *idType,
	}
	if *birthdate != "" {
		bd, err := time.Parse("2006-01-02", *birthdate)
		if err != nil {
			return fmt.Errorf("invalid -birthdate (want YYYY-MM-DD): %w", err)
		}
		declared.Birthdate = &bd
	}

	var text []byte
	if *textPath == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(*textPath)
	}
	if err != nil {
		return fmt.Errorf("reading recognized text: %w", err)
	}

	report, err := engine.Verify(declared, string(text))
	if err != nil {
		return err
	}

	out := struct {
		Valid   bool                       `json:"valid"`
		Reasons []string                   `json:"reasons,omitempty"`
		Report  *verify.VerificationReport `json:"report"`
	}{
		Valid:   report.Valid(),
		Reasons: report.Reasons(),
		Report:  report,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if !out.Valid {
		os.Exit(1)
	}
	return nil
}
